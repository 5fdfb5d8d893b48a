package action

import (
	"log/slog"

	"github.com/iw2rmb/clipact/dom"
)

// Plan is a validated, immutable Config. Building one has no side effects.
type Plan struct {
	mode      Mode
	target    *dom.Element
	text      string
	container *dom.Element
	trigger   *dom.Element
	host      Host
	emitter   Emitter
	log       *slog.Logger
}

// NewPlan validates cfg. Checks run in a fixed order: source exclusivity,
// action value, target value, container, emitter, host. Target and Container
// must be attached to their document.
func NewPlan(cfg Config) (Plan, error) {
	hasTarget := cfg.Target != nil
	hasText := cfg.Text != ""
	switch {
	case hasTarget && hasText:
		return Plan{}, &ConfigError{Field: "target", Err: ErrMultipleSources}
	case !hasTarget && !hasText:
		return Plan{}, &ConfigError{Field: "target", Err: ErrMissingSources}
	}

	mode, err := ParseMode(cfg.Action)
	if err != nil {
		return Plan{}, err
	}

	p := Plan{
		mode:      mode,
		text:      cfg.Text,
		container: cfg.Container,
		trigger:   cfg.Trigger,
		host:      cfg.Host,
		emitter:   cfg.Emitter,
		log:       cfg.Logger,
	}

	if hasTarget {
		el, ok := cfg.Target.(*dom.Element)
		if !ok || el == nil || !el.IsConnected() {
			return Plan{}, &ConfigError{Field: "target", Err: ErrInvalidTarget}
		}
		p.target = el
	}

	if c := p.container; c != nil && !c.IsConnected() {
		return Plan{}, &ConfigError{Field: "container", Err: ErrInvalidContainer}
	}

	if p.emitter == nil {
		return Plan{}, &ConfigError{Field: "emitter", Err: ErrMissingEmitter}
	}

	if p.host == nil {
		switch {
		case p.target != nil:
			p.host = HostFor(p.target.OwnerDocument())
		case p.container != nil:
			p.host = HostFor(p.container.OwnerDocument())
		default:
			return Plan{}, &ConfigError{Field: "host", Err: ErrMissingHost}
		}
	}
	if p.container == nil {
		p.container = p.host.Body()
	}
	if p.log == nil {
		p.log = slog.New(slog.DiscardHandler)
	}
	return p, nil
}

func (p Plan) Mode() Mode              { return p.mode }
func (p Plan) Target() *dom.Element    { return p.target }
func (p Plan) Text() string            { return p.text }
func (p Plan) Container() *dom.Element { return p.container }
func (p Plan) Trigger() *dom.Element   { return p.trigger }
