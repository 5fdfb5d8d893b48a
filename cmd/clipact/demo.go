package main

import (
	_ "embed"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/clipact/dom"
	"github.com/iw2rmb/clipact/tui"
)

//go:embed demo.yaml
var demoPage string

func newDemoCmd(root *rootOptions) *cobra.Command {
	var noColor bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Browse the page triggers in a terminal view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			log := newLogger(cmd.ErrOrStderr(), cfg)

			clip, err := openClipboard(cfg.Clipboard.Backend, os.Stdout)
			if err != nil {
				log.Warn("clipboard unavailable, commands will be refused", "backend", cfg.Clipboard.Backend, "err", err)
			}
			opt := dom.Options{Clipboard: clip}

			var doc *dom.Document
			if cfg.Page != "" {
				doc, err = dom.LoadPageFile(cfg.Page, opt)
			} else {
				doc, err = dom.LoadPage(strings.NewReader(demoPage), opt)
			}
			if err != nil {
				return err
			}

			return tui.Run(tui.Config{Doc: doc, Style: tui.DefaultStyle(), Logger: log}, noColor || terminal(os.Stdout) == nil)
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "render without colors")
	return cmd
}
