package views

import (
	"bytes"
	"context"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/folio/markdown"
	"github.com/eringen/folio/reveal"
)

// builder accumulates escaped HTML for a component.
type builder struct {
	bytes.Buffer
}

func (b *builder) raw(parts ...string) {
	for _, p := range parts {
		b.WriteString(p)
	}
}

func (b *builder) text(s string) {
	b.WriteString(html.EscapeString(s))
}

func (b *builder) attr(key, value string) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteByte('"')
}

// open writes a start tag. attrs are key/value pairs.
func (b *builder) open(tag string, attrs ...string) {
	b.WriteByte('<')
	b.WriteString(tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		b.attr(attrs[i], attrs[i+1])
	}
	b.WriteByte('>')
}

func (b *builder) close(tag string) {
	b.raw("</", tag, ">")
}

// element writes <tag attrs>text</tag>.
func (b *builder) element(tag, text string, attrs ...string) {
	b.open(tag, attrs...)
	b.text(text)
	b.close(tag)
}

// rich writes <tag attrs>md</tag> with md rendered as inline markdown.
func (b *builder) rich(tag, md string, attrs ...string) {
	b.open(tag, attrs...)
	b.WriteString(markdown.Inline(md))
	b.close(tag)
}

// openRevealed writes a start tag for a revealable element: its id, the
// base classes merged with the state classes, the observation attributes
// and the stagger delay.
func (b *builder) openRevealed(tag string, el *reveal.Element, opts reveal.Options, base string, extra ...string) {
	b.WriteByte('<')
	b.WriteString(tag)
	b.attr("id", el.ID)
	b.attr("class", reveal.ClassList(base, el.Classes()))
	for _, a := range el.Attrs(opts) {
		b.attr(a.Key, a.Value)
	}
	if s := el.Style(); s != "" {
		b.attr("style", s)
	}
	for i := 0; i+1 < len(extra); i += 2 {
		b.attr(extra[i], extra[i+1])
	}
	b.WriteByte('>')
}

// openSection writes the start tag of a top-level section. site.js reports
// the first reveal of each tracked section.
func (b *builder) openSection(tag string, el *reveal.Element, base string) {
	b.openRevealed(tag, el, SectionOptions, base, "data-reveal-track", "")
}

// component wraps a builder function as a templ component.
func component(fn func(ctx context.Context, b *builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b builder
		fn(ctx, &b)
		_, err := w.Write(b.Bytes())
		return err
	})
}
