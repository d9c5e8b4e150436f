package dom

import "slices"

// Listener handles a dispatched event.
type Listener func(*Event)

// EventTarget is anything listeners can subscribe to: nodes, the document and
// the window.
type EventTarget interface {
	AddEventListener(typ EventType, fn Listener, opts ...ListenerOption) *Subscription
}

type listenerOptions struct {
	passive *bool
}

// ListenerOption configures a subscription.
type ListenerOption func(*listenerOptions)

// Passive marks a listener as passive or not. Touch listeners registered on the
// document or the window are passive unless Passive(false) is given; a passive
// listener cannot prevent the default action.
func Passive(p bool) ListenerOption {
	return func(o *listenerOptions) { o.passive = &p }
}

// Subscription is a registered listener. Remove is idempotent.
type Subscription struct {
	set     *listenerSet
	typ     EventType
	fn      Listener
	passive *bool
	global  bool
	removed bool
}

// Remove unsubscribes the listener.
func (s *Subscription) Remove() {
	if s == nil || s.removed {
		return
	}
	s.removed = true
	s.set.remove(s)
}

// Active reports whether the subscription has not been removed.
func (s *Subscription) Active() bool { return s != nil && !s.removed }

func (s *Subscription) isPassive(e *Event) bool {
	if s.passive != nil {
		return *s.passive
	}
	return s.global && e.IsTouch()
}

type listenerSet struct {
	subs map[EventType][]*Subscription
}

func (ls *listenerSet) add(typ EventType, fn Listener, global bool, opts []ListenerOption) *Subscription {
	var o listenerOptions
	for _, opt := range opts {
		opt(&o)
	}
	if ls.subs == nil {
		ls.subs = make(map[EventType][]*Subscription)
	}
	s := &Subscription{set: ls, typ: typ, fn: fn, passive: o.passive, global: global}
	ls.subs[typ] = append(ls.subs[typ], s)
	return s
}

func (ls *listenerSet) remove(s *Subscription) {
	list := ls.subs[s.typ]
	if i := slices.Index(list, s); i >= 0 {
		ls.subs[s.typ] = slices.Delete(list, i, i+1)
	}
}

func (ls *listenerSet) count(typ EventType) int { return len(ls.subs[typ]) }

func (ls *listenerSet) clear() {
	for _, list := range ls.subs {
		for _, s := range list {
			s.removed = true
		}
	}
	ls.subs = nil
}

// fire invokes the listeners for e.Type in registration order. Listeners added
// during dispatch do not see the current event; listeners removed during
// dispatch are skipped.
func (ls *listenerSet) fire(e *Event) {
	list := slices.Clone(ls.subs[e.Type])
	for _, s := range list {
		if s.removed {
			continue
		}
		e.passive = s.isPassive(e)
		s.fn(e)
	}
	e.passive = false
}

// ListenerGroup collects the subscriptions acquired by one owner so they can be
// released together. The zero value is ready to use.
type ListenerGroup struct {
	subs []*Subscription
}

// Listen subscribes fn on target and records the subscription.
func (g *ListenerGroup) Listen(target EventTarget, typ EventType, fn Listener, opts ...ListenerOption) {
	g.subs = append(g.subs, target.AddEventListener(typ, fn, opts...))
}

// Release removes every recorded subscription.
func (g *ListenerGroup) Release() {
	for _, s := range g.subs {
		s.Remove()
	}
	g.subs = nil
}

// Len returns the number of held subscriptions.
func (g *ListenerGroup) Len() int { return len(g.subs) }
