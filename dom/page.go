package dom

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// PageSpec describes a document in YAML:
//
//	dir: rtl
//	scroll_top: 40
//	body:
//	  - tag: input
//	    id: input
//	    value: abc
//	  - tag: button
//	    text: Copy
//	    attrs: {data-clipboard-target: "#input"}
type PageSpec struct {
	Dir       string     `yaml:"dir"`
	ScrollTop int        `yaml:"scroll_top"`
	Body      []NodeSpec `yaml:"body"`
}

// NodeSpec describes one element and its subtree.
type NodeSpec struct {
	Tag      string            `yaml:"tag"`
	ID       string            `yaml:"id"`
	Class    string            `yaml:"class"`
	Text     string            `yaml:"text"`
	Value    string            `yaml:"value"`
	Attrs    map[string]string `yaml:"attrs"`
	Children []NodeSpec        `yaml:"children"`
}

// LoadPage decodes a PageSpec from r and builds a document from it.
func LoadPage(r io.Reader, opt Options) (*Document, error) {
	var spec PageSpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode page: %w", err)
	}
	return Build(spec, opt)
}

// LoadPageFile reads a YAML page from path.
func LoadPageFile(path string, opt Options) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer f.Close()
	return LoadPage(f, opt)
}

// Build creates a document from spec.
func Build(spec PageSpec, opt Options) (*Document, error) {
	if spec.Dir != "" && opt.Dir == "" {
		opt.Dir = spec.Dir
	}
	d := New(opt)
	d.SetScrollTop(spec.ScrollTop)
	for i, ns := range spec.Body {
		el, err := d.buildNode(ns)
		if err != nil {
			return nil, fmt.Errorf("body[%d]: %w", i, err)
		}
		d.body.AppendChild(el)
	}
	return d, nil
}

func (d *Document) buildNode(ns NodeSpec) (*Element, error) {
	if ns.Tag == "" {
		return nil, errors.New("missing tag")
	}
	el := d.CreateElement(ns.Tag)
	for k, v := range ns.Attrs {
		el.SetAttr(k, v)
	}
	if ns.ID != "" {
		el.SetAttr("id", ns.ID)
	}
	if ns.Class != "" {
		el.SetAttr("class", ns.Class)
	}
	if ns.Value != "" {
		if !el.IsFormControl() {
			return nil, fmt.Errorf("%s: value set on a non-form element", ns.Tag)
		}
		el.SetValue(ns.Value)
	}
	if ns.Text != "" {
		el.AppendText(ns.Text)
	}
	for i, cs := range ns.Children {
		child, err := d.buildNode(cs)
		if err != nil {
			return nil, fmt.Errorf("%s.children[%d]: %w", ns.Tag, i, err)
		}
		el.AppendChild(child)
	}
	return el, nil
}
