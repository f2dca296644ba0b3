package naming

import (
	"fmt"
	"sync"
)

// FallbackPrefix starts the base name given to images with no usable text.
const FallbackPrefix = "meme_"

// Registry is the set of names present in the target directory, shared by
// all in-flight files of a run. It is safe for concurrent use: membership
// checks, candidate selection and insertion happen under one lock, so two
// files can never be handed the same name.
//
// The registry also owns the fallback counter. It starts at the size of
// the initial snapshot and only grows, which keeps fallback names unique
// within a run and independent of scheduling order.
type Registry struct {
	mu          sync.Mutex
	names       map[string]struct{}
	fallback    int
	maxLen      int
	maxAttempts int
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithMaxLength overrides MaxFilenameLength.
func WithMaxLength(n int) RegistryOption {
	return func(r *Registry) { r.maxLen = n }
}

// WithMaxAttempts overrides DefaultMaxAttempts.
func WithMaxAttempts(n int) RegistryOption {
	return func(r *Registry) { r.maxAttempts = n }
}

// NewRegistry seeds a registry with the names currently in the directory.
func NewRegistry(existing []string, opts ...RegistryOption) *Registry {
	r := &Registry{
		names:       make(map[string]struct{}, len(existing)),
		maxLen:      MaxFilenameLength,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, name := range existing {
		r.names[name] = struct{}{}
	}
	r.fallback = len(r.names)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MaxLength returns the file name length limit used for allocation.
func (r *Registry) MaxLength() int {
	return r.maxLen
}

// NextFallback returns the next "meme_<N>" base name.
func (r *Registry) NextFallback() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	base := fmt.Sprintf("%s%d", FallbackPrefix, r.fallback)
	r.fallback++
	return base
}

// Reserve allocates a free name for base and suffix and records it before
// returning. Call Release if the rename that uses the name fails.
func (r *Registry) Reserve(base, suffix string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name, err := Allocate(base, suffix, r.taken, r.maxLen, r.maxAttempts)
	if err != nil {
		return "", err
	}
	r.names[name] = struct{}{}
	return name, nil
}

// Release forgets a name reserved by Reserve.
func (r *Registry) Release(name string) {
	r.mu.Lock()
	delete(r.names, name)
	r.mu.Unlock()
}

// taken must be called with r.mu held.
func (r *Registry) taken(name string) bool {
	_, ok := r.names[name]
	return ok
}
