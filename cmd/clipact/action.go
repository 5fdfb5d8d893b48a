package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/clipact/action"
	"github.com/iw2rmb/clipact/delegate"
	"github.com/iw2rmb/clipact/dom"
	"github.com/iw2rmb/clipact/emitter"
	"github.com/iw2rmb/clipact/internal/grapheme"
)

type actionOptions struct {
	text      string
	target    string
	container string
}

func newActionCmd(root *rootOptions, mode string) *cobra.Command {
	o := &actionOptions{}
	cmd := &cobra.Command{
		Use:   mode + " [--text S | --target SEL]",
		Short: "Run a single " + mode + " action",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAction(cmd, root, o, mode)
		},
	}
	cmd.Flags().StringVar(&o.text, "text", "", "literal text to "+mode)
	cmd.Flags().StringVar(&o.target, "target", "", "selector of the page element to "+mode)
	cmd.Flags().StringVar(&o.container, "container", "", "selector of the element that receives the temporary textarea")
	return cmd
}

func runAction(cmd *cobra.Command, root *rootOptions, o *actionOptions, mode string) error {
	cfg, err := root.load()
	if err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr(), cfg)

	clip, err := openClipboard(cfg.Clipboard.Backend, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("failed to open clipboard: %w", err)
	}
	doc, err := document(cfg, clip)
	if err != nil {
		return err
	}

	ac := action.Config{
		Action: mode,
		Text:   o.text,
		Host:   action.HostFor(doc),
		Logger: log,
	}
	if o.target != "" {
		el, err := query(doc, o.target)
		if err != nil {
			return err
		}
		ac.Target = el
	}
	if o.container != "" {
		el, err := query(doc, o.container)
		if err != nil {
			return err
		}
		ac.Container = el
	}

	events := emitter.New()
	ac.Emitter = events
	return report(cmd.OutOrStdout(), events, func() (*action.Action, error) {
		return action.New(ac)
	})
}

func newTriggerCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trigger SEL",
		Short: "Click a trigger element of the page",
		Long: `trigger clicks the element matching SEL as a user would. The element's
data-clipboard-* attributes describe the action; action.default applies
when it has no data-clipboard-action.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrigger(cmd, root, args[0])
		},
	}
}

func runTrigger(cmd *cobra.Command, root *rootOptions, selector string) error {
	cfg, err := root.load()
	if err != nil {
		return err
	}
	if cfg.Page == "" {
		return errors.New("trigger needs a page (--page or page in config)")
	}
	log := newLogger(cmd.ErrOrStderr(), cfg)

	clip, err := openClipboard(cfg.Clipboard.Backend, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("failed to open clipboard: %w", err)
	}
	doc, err := document(cfg, clip)
	if err != nil {
		return err
	}
	trigger, err := query(doc, selector)
	if err != nil {
		return err
	}

	del, err := delegate.New(doc, selector, delegate.Options{
		Action: func(el *dom.Element) string {
			if v, ok := el.Attr(delegate.AttrAction); ok {
				return v
			}
			return cfg.Action.Default
		},
		Logger: log,
	})
	if err != nil {
		return err
	}
	defer del.Destroy()

	var cfgErr error
	del.On(delegate.EventConfigError, func(p any) {
		cfgErr, _ = p.(error)
	})
	return report(cmd.OutOrStdout(), del, func() (*action.Action, error) {
		doc.Click(trigger)
		if cfgErr != nil {
			return nil, cfgErr
		}
		return del.Last(), nil
	})
}

type subscriber interface {
	On(name string, fn emitter.Handler) emitter.Subscription
}

// report runs fn and prints the outcome the action emitted on events.
func report(w io.Writer, events subscriber, fn func() (*action.Action, error)) error {
	var (
		success *action.SuccessEvent
		failure *action.ErrorEvent
	)
	events.On(action.EventSuccess, func(p any) {
		if ev, ok := p.(action.SuccessEvent); ok {
			success = &ev
		}
	})
	events.On(action.EventError, func(p any) {
		if ev, ok := p.(action.ErrorEvent); ok {
			failure = &ev
		}
	})

	a, err := fn()
	if err != nil {
		return err
	}
	if a != nil {
		defer a.Destroy()
	}

	switch {
	case success != nil:
		fmt.Fprintf(w, "%s: %d characters\n", success.Action, grapheme.Count(success.Text))
		return nil
	case failure != nil:
		return fmt.Errorf("%s: %w", failure.Action, ErrRefused)
	default:
		return errors.New("no result reported")
	}
}

func query(doc *dom.Document, selector string) (*dom.Element, error) {
	if _, err := dom.ParseSelector(selector); err != nil {
		return nil, err
	}
	el := doc.QuerySelector(selector)
	if el == nil {
		return nil, fmt.Errorf("no element matches %q", selector)
	}
	return el, nil
}
