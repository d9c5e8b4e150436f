package dom

import (
	"fmt"
	"strconv"
	"strings"
)

// Style property names understood by the layout engine and the renderer.
const (
	PropDisplay       = "display"
	PropPosition      = "position"
	PropLeft          = "left"
	PropTop           = "top"
	PropWidth         = "width"
	PropHeight        = "height"
	PropFlexWrap      = "flex-wrap"
	PropGap           = "gap"
	PropMargin        = "margin"
	PropPadding       = "padding"
	PropBorder        = "border"
	PropBoxSizing     = "box-sizing"
	PropColor         = "color"
	PropBackground    = "background"
	PropBorderColor   = "border-color"
	PropFontWeight    = "font-weight"
	PropOpacity       = "opacity"
	PropPointerEvents = "pointer-events"
	PropUserSelect    = "user-select"
)

// Property is a single name/value style pair.
type Property struct {
	Name  string
	Value string
}

// computedDefaults lists every property reported by Document.ComputedStyle, in
// report order, with its initial value.
var computedDefaults = []Property{
	{PropDisplay, "block"},
	{PropPosition, "static"},
	{PropLeft, "auto"},
	{PropTop, "auto"},
	{PropWidth, "auto"},
	{PropHeight, "auto"},
	{PropFlexWrap, "nowrap"},
	{PropGap, "0"},
	{PropMargin, "0"},
	{PropPadding, "0"},
	{PropBorder, "none"},
	{PropBoxSizing, "content-box"},
	{PropColor, ""},
	{PropBackground, ""},
	{PropBorderColor, ""},
	{PropFontWeight, "normal"},
	{PropOpacity, "1"},
	{PropPointerEvents, "auto"},
	{PropUserSelect, "auto"},
}

// Style holds a node's inline style properties in insertion order.
type Style struct {
	props    map[string]string
	order    []string
	onChange func()
}

func newStyle(onChange func()) *Style {
	return &Style{props: make(map[string]string), onChange: onChange}
}

// Get returns the value of name, or "" if unset.
func (s *Style) Get(name string) string {
	return s.props[name]
}

// Has reports whether name is set.
func (s *Style) Has(name string) bool {
	_, ok := s.props[name]
	return ok
}

// Set assigns value to name. An empty value removes the property.
func (s *Style) Set(name, value string) {
	name = strings.ToLower(strings.TrimSpace(name))
	value = strings.TrimSpace(value)
	if name == "" {
		return
	}
	if value == "" {
		s.Remove(name)
		return
	}
	if old, ok := s.props[name]; ok && old == value {
		return
	}
	if _, ok := s.props[name]; !ok {
		s.order = append(s.order, name)
	}
	s.props[name] = value
	s.changed()
}

// Remove deletes name from the style.
func (s *Style) Remove(name string) {
	if _, ok := s.props[name]; !ok {
		return
	}
	delete(s.props, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.changed()
}

// Properties returns the set properties in insertion order.
func (s *Style) Properties() []Property {
	out := make([]Property, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, Property{Name: name, Value: s.props[name]})
	}
	return out
}

// Len returns the number of set properties.
func (s *Style) Len() int { return len(s.order) }

// String formats the style as an inline declaration list.
func (s *Style) String() string {
	parts := make([]string, 0, len(s.order))
	for _, name := range s.order {
		parts = append(parts, name+": "+s.props[name])
	}
	return strings.Join(parts, "; ")
}

func (s *Style) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

// copyInto replaces dst's properties with s's without notifying s.
func (s *Style) copyInto(dst *Style) {
	for _, p := range s.Properties() {
		dst.Set(p.Name, p.Value)
	}
}

// ParseInline parses a declaration list such as "display: flex; gap: 1" into
// properties. Malformed declarations are skipped.
func ParseInline(decl string) []Property {
	var out []Property
	for _, part := range strings.Split(decl, ";") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		out = append(out, Property{Name: name, Value: value})
	}
	return out
}

// Px formats a length in cells the way widgets write positions.
func Px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// ParseLength parses a length such as "12", "12px" or "3.5". It reports false
// for "auto", empty or malformed values.
func ParseLength(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	if s == "" || s == "auto" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParsePadding parses "v" or "v h" into vertical and horizontal padding.
func ParsePadding(s string) (v, h float64) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 0:
		return 0, 0
	case 1:
		n, _ := ParseLength(fields[0])
		return n, n
	default:
		a, _ := ParseLength(fields[0])
		b, _ := ParseLength(fields[1])
		return a, b
	}
}

// ParseOpacity parses an opacity value clamped to [0, 1]. Unset or malformed
// values are fully opaque.
func ParseOpacity(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 1
	}
	return min(max(v, 0), 1)
}

// FormatOpacity formats an opacity for a style write.
func FormatOpacity(v float64) string {
	return fmt.Sprintf("%g", min(max(v, 0), 1))
}
