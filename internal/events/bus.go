// Package events delivers finished routes to interested observers.
package events

import (
	"fmt"
	"log"
	"reflect"
	"route-recommendation-service/internal/domain"
	"slices"
	"sync"
)

// Observer reacts to a published route. Observers are compared by identity,
// so implementations are normally pointer types. Values of non-comparable
// types (structs holding slices or maps) are always appended on Subscribe and
// cannot be removed with Unsubscribe.
type Observer interface {
	OnRoute(r domain.RouteEstimate) error
}

// ObserverFunc adapts a function to Observer. Function values are not
// comparable; wrap them in a pointer before subscribing if Unsubscribe is needed.
type ObserverFunc func(r domain.RouteEstimate) error

func (f *ObserverFunc) OnRoute(r domain.RouteEstimate) error { return (*f)(r) }

// FailureHandler is told about observers that returned an error or panicked.
type FailureHandler func(o Observer, err error)

// Bus delivers routes synchronously, in subscription order.
// A failing observer never prevents delivery to the others.
type Bus struct {
	mu        sync.RWMutex
	observers []Observer
	onFailure FailureHandler
}

func NewBus() *Bus {
	return &Bus{onFailure: logFailure}
}

func logFailure(o Observer, err error) {
	log.Printf("event_delivery_failed observer=%T err=%v", o, err)
}

// OnFailure replaces the failure handler. nil restores the default.
func (b *Bus) OnFailure(h FailureHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if h == nil {
		h = logFailure
	}
	b.onFailure = h
}

// Subscribe adds o. Subscribing an observer twice has no effect.
func (b *Bus) Subscribe(o Observer) {
	if o == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if slices.ContainsFunc(b.observers, func(x Observer) bool { return sameObserver(x, o) }) {
		return
	}
	b.observers = append(b.observers, o)
}

func (b *Bus) Unsubscribe(o Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.observers = slices.DeleteFunc(b.observers, func(x Observer) bool { return sameObserver(x, o) })
}

// sameObserver compares without panicking on non-comparable dynamic types.
func sameObserver(a, b Observer) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// Len reports the number of subscribers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.observers)
}

// Publish delivers r to every current subscriber. Each observer gets its own copy.
func (b *Bus) Publish(r domain.RouteEstimate) {
	b.mu.RLock()
	subs := slices.Clone(b.observers)
	onFailure := b.onFailure
	b.mu.RUnlock()

	for _, o := range subs {
		if err := deliver(o, r.Clone()); err != nil {
			onFailure(o, err)
		}
	}
}

func deliver(o Observer, r domain.RouteEstimate) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("observer panicked: %v", p)
		}
	}()
	return o.OnRoute(r)
}
