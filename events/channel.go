package events

import (
	"sync"

	"github.com/golang/glog"
)

// Handler receives notifications. A non-nil error stops delivery of the
// notification to later subscribers and is returned to the caller of the
// decorated operation.
type Handler func(kind Kind, args Args) error

// Listener is implemented by types observing notifications, such as
// LogListener.
type Listener interface {
	OnEvent(kind Kind, args Args) error
}

// SubscriptionID identifies a subscription for Unsubscribe.
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler Handler
}

// Channel delivers notifications to subscribers. Subscribers of a kind are
// called synchronously, in the order they subscribed. The zero value is
// ready to use and a Channel is safe for concurrent use; handlers may
// subscribe and unsubscribe while a notification is delivered.
type Channel struct {
	mu     sync.RWMutex
	nextID SubscriptionID
	subs   map[Kind][]subscription
}

// NewChannel returns an empty channel.
func NewChannel() *Channel {
	return &Channel{}
}

// Subscribe registers h for kinds, or for every kind if none are given.
// A nil h is not registered and yields the zero SubscriptionID.
func (c *Channel) Subscribe(h Handler, kinds ...Kind) SubscriptionID {
	if h == nil {
		return 0
	}
	if len(kinds) == 0 {
		kinds = Kinds()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.subs == nil {
		c.subs = make(map[Kind][]subscription)
	}
	c.nextID++
	id := c.nextID
	seen := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		if seen[k] {
			continue
		}
		seen[k] = true
		c.subs[k] = append(c.subs[k], subscription{id: id, handler: h})
	}
	glog.V(2).Infof("events: subscription %d created for %v", id, kinds)
	return id
}

// SubscribeListener registers l for kinds, or for every kind if none are
// given. A nil l is not registered and yields the zero SubscriptionID.
func (c *Channel) SubscribeListener(l Listener, kinds ...Kind) SubscriptionID {
	if l == nil {
		return 0
	}
	return c.Subscribe(l.OnEvent, kinds...)
}

// Unsubscribe removes the subscription with the given ID. It reports
// whether the subscription existed.
func (c *Channel) Unsubscribe(id SubscriptionID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	var found bool
	for k, subs := range c.subs {
		kept := make([]subscription, 0, len(subs))
		for _, s := range subs {
			if s.id == id {
				found = true
				continue
			}
			kept = append(kept, s)
		}
		c.subs[k] = kept
	}
	if found {
		glog.V(2).Infof("events: subscription %d removed", id)
	}
	return found
}

// Subscribers returns the number of subscriptions for kind.
func (c *Channel) Subscribers(kind Kind) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subs[kind])
}

// Fire delivers a notification. Firing a kind nobody subscribed to does
// nothing. Panics raised by handlers are not recovered.
func (c *Channel) Fire(kind Kind, args Args) error {
	c.mu.RLock()
	subs := c.subs[kind]
	c.mu.RUnlock()
	// Unsubscribe replaces the slice rather than editing it in place, so
	// subs is a stable snapshot.
	for _, s := range subs {
		if err := s.handler(kind, args); err != nil {
			glog.V(2).Infof("events: subscription %d stopped %v delivery: %v", s.id, kind, err)
			return err
		}
	}
	return nil
}
