package reveal

import (
	"strconv"
	"strings"
)

// Attr is a single rendered HTML attribute.
type Attr struct {
	Key   string
	Value string
}

func (v Variant) String() string {
	switch v {
	case Fade:
		return "fade"
	case SlideUp:
		return "up"
	case SlideFromLeft:
		return "left"
	case SlideFromRight:
		return "right"
	default:
		return "fade"
	}
}

func (v Variant) hiddenClasses() string {
	switch v {
	case SlideUp:
		return "opacity-0 translate-y-8"
	case SlideFromLeft:
		return "opacity-0 -translate-x-8"
	case SlideFromRight:
		return "opacity-0 translate-x-8"
	default:
		return "opacity-0"
	}
}

func (v Variant) revealedClasses() string {
	switch v {
	case SlideUp:
		return "opacity-100 translate-y-0"
	case SlideFromLeft, SlideFromRight:
		return "opacity-100 translate-x-0"
	default:
		return "opacity-100"
	}
}

// Classes returns the state classes for the element's current state.
func (e *Element) Classes() string {
	if e.State == Revealed {
		return e.Variant.revealedClasses()
	}
	return e.Variant.hiddenClasses()
}

// RevealClasses is what the browser script adds when the element reveals.
func (e *Element) RevealClasses() string {
	return e.Variant.revealedClasses()
}

// Style returns the inline style carrying the stagger delay, or "".
func (e *Element) Style() string {
	d := e.Delay()
	if d <= 0 {
		return ""
	}
	return "transition-delay: " + strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}

// Attrs returns the data attributes the browser script reads to set up
// observation for this element.
func (e *Element) Attrs(opts Options) []Attr {
	opts = opts.withDefaults()
	attrs := []Attr{
		{Key: "data-reveal", Value: e.Variant.String()},
		{Key: "data-reveal-threshold", Value: strconv.FormatFloat(opts.Threshold, 'f', -1, 64)},
		{Key: "data-reveal-margin", Value: opts.RootMargin()},
		{Key: "data-reveal-classes", Value: e.RevealClasses()},
	}
	if e.State == Revealed {
		attrs = append(attrs, Attr{Key: "data-revealed", Value: "true"})
	}
	return attrs
}

// ClassList joins non-empty class groups with single spaces.
func ClassList(groups ...string) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		if g = strings.TrimSpace(g); g != "" {
			parts = append(parts, g)
		}
	}
	return strings.Join(parts, " ")
}
