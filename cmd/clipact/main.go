package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "clipact:", err)
		if errors.Is(err, ErrRefused) {
			os.Exit(ExitCodeRefused)
		}
		os.Exit(1)
	}
}
