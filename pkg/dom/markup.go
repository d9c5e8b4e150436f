package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/matzehuels/dragbox/pkg/errors"
)

// ParseMarkup parses an HTML fragment into detached nodes owned by d. Element
// names become tags, so registered kinds get their behaviour. The id and style
// attributes are honoured; text content is trimmed and joined into the node's
// text. Comments and other attributes are ignored.
//
// The returned nodes are not connected; append them to the body to mount them.
func (d *Document) ParseMarkup(r io.Reader) ([]*Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	parsed, err := html.ParseFragment(r, ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMarkup, err, "parse markup")
	}

	var out []*Node
	for _, hn := range parsed {
		switch hn.Type {
		case html.ElementNode:
			n, err := d.convert(hn)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		case html.TextNode:
			if strings.TrimSpace(hn.Data) != "" {
				return nil, errors.New(errors.ErrCodeInvalidMarkup, "unexpected top-level text %q", strings.TrimSpace(hn.Data))
			}
		}
	}
	return out, nil
}

// MountMarkup parses markup and appends the resulting nodes to the body.
func (d *Document) MountMarkup(markup string) ([]*Node, error) {
	nodes, err := d.ParseMarkup(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if err := d.body.AppendChild(n); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (d *Document) convert(hn *html.Node) (*Node, error) {
	n := d.CreateElement(strings.ToLower(hn.Data))
	for _, a := range hn.Attr {
		switch strings.ToLower(a.Key) {
		case "id":
			if err := n.SetID(a.Val); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidMarkup, err, "element <%s>", hn.Data)
			}
		case "style":
			for _, p := range ParseInline(a.Val) {
				n.style.Set(p.Name, p.Value)
			}
		}
	}

	var text []string
	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			child, err := d.convert(c)
			if err != nil {
				return nil, err
			}
			child.parent = n
			n.children = append(n.children, child)
		case html.TextNode:
			if t := strings.TrimSpace(c.Data); t != "" {
				text = append(text, t)
			}
		}
	}
	n.text = strings.Join(text, " ")
	return n, nil
}
