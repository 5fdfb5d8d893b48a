package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/clipact/clipboard"
	"github.com/iw2rmb/clipact/delegate"
	"github.com/iw2rmb/clipact/dom"
)

func newSupportedCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "supported [ACTION...]",
		Short: "Report whether copy and cut work with the configured backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			clip, err := openClipboard(cfg.Clipboard.Backend, cmd.OutOrStdout())
			if err != nil && !errors.Is(err, clipboard.ErrUnsupported) {
				return fmt.Errorf("failed to open clipboard: %w", err)
			}
			doc := dom.New(dom.Options{Clipboard: clip})

			if len(args) == 0 {
				args = []string{dom.CommandCopy, dom.CommandCut}
			}
			for _, a := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", a, delegate.IsSupported(doc, a))
			}
			return nil
		},
	}
}
