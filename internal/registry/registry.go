// Package registry implements the polymorphic-decode table that maps a
// wire discriminator to the matching health value decoder. The core value
// types carry no type tag of their own; callers that persist or transmit
// payloads carry the discriminator alongside and hand both back here.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/meltforce/vitalbridge/internal/healthvalue"
)

// ErrNotRegistered is returned by Decode for an unknown discriminator.
var ErrNotRegistered = errors.New("no decoder registered")

// DecodeFunc decodes one variant's wire payload.
type DecodeFunc func(healthvalue.Payload) (healthvalue.Value, error)

// Registry is an explicit registration table, built once at process start
// and passed by reference to call sites. Registration is serialized;
// concurrent Decode calls after startup only take the read lock.
type Registry struct {
	mu       sync.RWMutex
	decoders map[string]DecodeFunc
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{decoders: make(map[string]DecodeFunc)}
}

// Register binds a discriminator to a decoder. Registering the same
// discriminator twice is a programming error and fails.
func (r *Registry) Register(kind string, fn DecodeFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.decoders[kind]; exists {
		return fmt.Errorf("decoder for %q already registered", kind)
	}
	r.decoders[kind] = fn
	return nil
}

// Decode dispatches a bare payload to the decoder registered for kind.
func (r *Registry) Decode(kind string, p healthvalue.Payload) (healthvalue.Value, error) {
	r.mu.RLock()
	fn, ok := r.decoders[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w for kind %q", ErrNotRegistered, kind)
	}
	return fn(p)
}

// Kinds returns the registered discriminators, sorted.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.decoders))
	for k := range r.decoders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// NewWithDefaults returns a registry with every core variant registered.
// EcgVoltageSample is not registered on its own: it has no independent
// identity and only ever decodes inside its recording.
func NewWithDefaults() *Registry {
	r := New()
	for kind, fn := range map[healthvalue.Kind]DecodeFunc{
		healthvalue.KindNumeric: func(p healthvalue.Payload) (healthvalue.Value, error) {
			return liftErr(healthvalue.DecodeNumeric(p))
		},
		healthvalue.KindAudiogram: func(p healthvalue.Payload) (healthvalue.Value, error) {
			return liftErr(healthvalue.DecodeAudiogram(p))
		},
		healthvalue.KindWorkout: func(p healthvalue.Payload) (healthvalue.Value, error) {
			return liftErr(healthvalue.DecodeWorkout(p))
		},
		healthvalue.KindEcgRecording: func(p healthvalue.Payload) (healthvalue.Value, error) {
			return liftErr(healthvalue.DecodeEcgRecording(p))
		},
		healthvalue.KindNutrition: func(p healthvalue.Payload) (healthvalue.Value, error) {
			return liftErr(healthvalue.DecodeNutrition(p))
		},
		healthvalue.KindMenstruationFlow: func(p healthvalue.Payload) (healthvalue.Value, error) {
			return liftErr(healthvalue.DecodeMenstruationFlow(p))
		},
	} {
		// Register cannot fail here: the kinds above are distinct.
		_ = r.Register(string(kind), fn)
	}
	return r
}

// liftErr keeps a failed decode from leaking a typed nil into the Value
// interface.
func liftErr[T healthvalue.Value](v T, err error) (healthvalue.Value, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
