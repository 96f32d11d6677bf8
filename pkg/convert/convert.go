// Package convert defines a minimal string-converter contract and a
// process-wide registry keyed by target type. Value types register a
// converter once (usually from an init function); callers that only know
// the target type recover it with For.
package convert

import (
	"reflect"
	"sync"
)

// Converter translates between the textual and the in-memory representation
// of T. Implementations must be stateless and safe for concurrent use.
type Converter[T any] interface {
	// FromString parses the textual representation. It must reject input
	// it cannot fully represent rather than guessing.
	FromString(s string) (T, error)

	// ToString renders the canonical textual representation. ToString of
	// a value produced by FromString must parse back to an equal value.
	ToString(v T) string
}

var registry = struct {
	mu sync.RWMutex
	m  map[reflect.Type]any
}{m: make(map[reflect.Type]any)}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register makes c the converter for T. A later Register for the same type
// replaces the earlier one.
func Register[T any](c Converter[T]) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.m[typeOf[T]()] = c
}

// For looks up the registered converter for T.
func For[T any]() (Converter[T], bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	c, ok := registry.m[typeOf[T]()].(Converter[T])
	return c, ok
}

// FromStringPtr parses an optional input: a nil string yields a nil value
// and no error.
func FromStringPtr[T any](c Converter[T], s *string) (*T, error) {
	if s == nil {
		return nil, nil
	}
	v, err := c.FromString(*s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ToStringPtr renders an optional value: nil in, nil out.
func ToStringPtr[T any](c Converter[T], v *T) *string {
	if v == nil {
		return nil
	}
	s := c.ToString(*v)
	return &s
}
