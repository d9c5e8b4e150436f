package dom

import (
	"slices"

	"github.com/matzehuels/dragbox/pkg/errors"
)

// Element is the behaviour attached to nodes of a registered kind.
//
// Connected runs when the node becomes part of the connected tree and
// Disconnected when it leaves it. Implementations subscribe to input in
// Connected and must release every subscription in Disconnected.
type Element interface {
	Connected()
	Disconnected()
}

// Constructor builds the behaviour for a newly created node.
type Constructor func(n *Node) Element

// Registry maps element kind names to constructors.
type Registry struct {
	defs  map[string]Constructor
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Constructor)}
}

// Define registers a new element kind. Names must be valid custom element names
// and may only be defined once.
func (r *Registry) Define(name string, ctor Constructor) error {
	if err := errors.ValidateElementName(name); err != nil {
		return err
	}
	if ctor == nil {
		return errors.New(errors.ErrCodeInvalidInput, "constructor for %q is nil", name)
	}
	if _, ok := r.defs[name]; ok {
		return errors.New(errors.ErrCodeAlreadyDefined, "element %q is already defined", name)
	}
	r.defs[name] = ctor
	r.order = append(r.order, name)
	return nil
}

// Lookup returns the constructor for name.
func (r *Registry) Lookup(name string) (Constructor, bool) {
	ctor, ok := r.defs[name]
	return ctor, ok
}

// Names returns the defined names in definition order.
func (r *Registry) Names() []string { return slices.Clone(r.order) }
