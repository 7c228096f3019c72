package arbiter

import (
	"math/rand"
	"sync"
	"time"
)

const defaultDeadline = 5 * time.Second

// Entry pairs a provider with the deadline its fan-out task gets.
type Entry struct {
	Provider MoveProvider
	Deadline time.Duration
}

// Registry is the ordered set of enabled providers. Registration
// happens at boot; reads are concurrent.
type Registry struct {
	mu      sync.Mutex
	entries []Entry
	rng     *rand.Rand
}

func NewRegistry() *Registry {
	return &Registry{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Register adds a provider. A non-positive deadline gets the default;
// registering a name twice replaces the earlier entry.
func (r *Registry) Register(p MoveProvider, deadline time.Duration) {
	if deadline <= 0 {
		deadline = defaultDeadline
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.Provider.Name() == p.Name() {
			r.entries[i] = Entry{Provider: p, Deadline: deadline}
			return
		}
	}
	r.entries = append(r.entries, Entry{Provider: p, Deadline: deadline})
}

// Entries returns a copy in registration order.
func (r *Registry) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Get looks a provider up by name.
func (r *Registry) Get(name string) (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.Provider.Name() == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Pick draws a random provider name for a new game instance.
func (r *Registry) Pick() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return ""
	}
	return r.entries[r.rng.Intn(len(r.entries))].Provider.Name()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// MaxDeadline bounds the provider wait of one arbitration pass.
func (r *Registry) MaxDeadline() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	var max time.Duration
	for _, e := range r.entries {
		if e.Deadline > max {
			max = e.Deadline
		}
	}
	return max
}
