package dom

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/dragbox/pkg/errors"
)

func TestParseMarkup(t *testing.T) {
	var log []string
	doc := newRecorderDoc(t, &log)

	nodes, err := doc.ParseMarkup(strings.NewReader(`
		<test-el id="row" style="display: flex; gap: 1">
			<div id="a" style="border: rounded">  Alpha  </div>
			<!-- skipped -->
			<div id="b">Beta<span>inner</span>tail</div>
		</test-el>`))
	if err != nil {
		t.Fatalf("ParseMarkup() error = %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("got %d top-level nodes, want 1", len(nodes))
	}

	row := nodes[0]
	if row.Tag() != "test-el" || row.ID() != "row" {
		t.Errorf("row = %s#%s, want test-el#row", row.Tag(), row.ID())
	}
	if row.Element() == nil {
		t.Error("registered kind should get its behaviour")
	}
	if row.Style().Get(PropDisplay) != "flex" || row.Style().Get(PropGap) != "1" {
		t.Errorf("row style = %q", row.Style().String())
	}
	if got := ids(row.Children()); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("children = %v, want [a b]", got)
	}

	a := row.Child(0)
	if a.Text() != "Alpha" {
		t.Errorf("a text = %q, want Alpha", a.Text())
	}
	b := row.Child(1)
	if b.Text() != "Beta tail" {
		t.Errorf("b text = %q, want %q", b.Text(), "Beta tail")
	}
	if b.ChildCount() != 1 || b.Child(0).Text() != "inner" {
		t.Error("nested span not converted")
	}

	if row.IsConnected() || len(log) != 0 {
		t.Error("parsed nodes should be detached until mounted")
	}
}

func TestParseMarkupErrors(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{"top-level text", `hello <div></div>`},
		{"id with whitespace", `<div id="a b"></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument(nil, 80, 24)
			_, err := doc.ParseMarkup(strings.NewReader(tt.markup))
			if !errors.Is(err, errors.ErrCodeInvalidMarkup) {
				t.Errorf("ParseMarkup() error = %v, want %v", err, errors.ErrCodeInvalidMarkup)
			}
		})
	}
}

func TestMountMarkupConnects(t *testing.T) {
	var log []string
	doc := newRecorderDoc(t, &log)

	nodes, err := doc.MountMarkup(`<test-el id="one"></test-el><test-el id="two"></test-el>`)
	if err != nil {
		t.Fatalf("MountMarkup() error = %v", err)
	}
	if len(nodes) != 2 || !nodes[0].IsConnected() {
		t.Fatal("nodes not mounted")
	}
	want := []string{"connect:one", "connect:two"}
	if !slices.Equal(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}
