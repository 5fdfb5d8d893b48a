package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/clipact"
	"github.com/iw2rmb/clipact/clipboard"
	"github.com/iw2rmb/clipact/config"
	"github.com/iw2rmb/clipact/dom"
)

// ExitCodeRefused is returned when the clipboard command was not honored.
const ExitCodeRefused = 2

// ErrRefused indicates the platform refused the copy or cut command.
var ErrRefused = errors.New("clipboard command refused, copy manually")

type rootOptions struct {
	configPath string
	showConfig bool
	backend    string
	logLevel   string
	page       string
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	root := &cobra.Command{
		Use:   "clipact",
		Short: "Copy and cut text through a page model",
		Long: `clipact selects text from a literal string or an element of a YAML page,
runs the copy or cut command against the configured clipboard backend,
and reports the outcome.`,
		Version:       clipact.BuildVersion(),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o.showConfig {
				path, err := config.Path()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}
			return cmd.Help()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config-file", "", "read configuration from this file instead of ~/"+config.Dir+"/"+config.File)
	pf.StringVar(&o.backend, "backend", "", "clipboard backend (auto|system|native|osc52|memory)")
	pf.StringVar(&o.logLevel, "log-level", "", "log level (debug|info|warn|error)")
	pf.StringVar(&o.page, "page", "", "YAML page to load")
	root.Flags().BoolVar(&o.showConfig, "config", false, "show config file path")

	root.AddCommand(
		newActionCmd(o, "copy"),
		newActionCmd(o, "cut"),
		newTriggerCmd(o),
		newSupportedCmd(o),
		newDemoCmd(o),
	)
	return root
}

// load reads configuration and applies flag overrides.
func (o *rootOptions) load() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o.backend != "" {
		cfg.Clipboard.Backend = o.backend
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.page != "" {
		cfg.Page = o.page
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	lvl, _ := cfg.Log.SlogLevel()
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// openClipboard opens the configured backend. auto only falls back to OSC 52
// when w is a terminal.
func openClipboard(kind string, w io.Writer) (clipboard.Clipboard, error) {
	if k := strings.TrimSpace(kind); k == "" || strings.EqualFold(k, clipboard.BackendAuto) {
		return clipboard.Open(kind, terminal(w))
	}
	return clipboard.Open(kind, w)
}

func terminal(w io.Writer) io.Writer {
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return f
	}
	return nil
}

// document loads cfg.Page, or an empty document when no page is configured.
func document(cfg *config.Config, clip clipboard.Clipboard) (*dom.Document, error) {
	opt := dom.Options{Clipboard: clip}
	if cfg.Page == "" {
		return dom.New(opt), nil
	}
	return dom.LoadPageFile(cfg.Page, opt)
}
