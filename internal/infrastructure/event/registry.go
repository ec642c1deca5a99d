package event

import (
	"slices"
	"sync"
	"time"

	"github.com/aqario/backend/internal/domain/shared"
)

// registration is one hook with its run budget
type registration struct {
	hook    shared.PostCommitHook
	timeout time.Duration
}

func (r registration) matches(eventType string) bool {
	types := r.hook.EventTypes()
	return len(types) == 0 || slices.Contains(types, eventType)
}

// HookRegistry keeps hooks in registration order
type HookRegistry struct {
	mu    sync.RWMutex
	hooks []registration
}

// NewHookRegistry creates an empty registry
func NewHookRegistry() *HookRegistry {
	return &HookRegistry{}
}

// Register appends a hook. A hook name may be registered only once; a
// second registration replaces the first in place.
func (r *HookRegistry) Register(hook shared.PostCommitHook, timeout time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg := registration{hook: hook, timeout: timeout}
	for i := range r.hooks {
		if r.hooks[i].hook.Name() == hook.Name() {
			r.hooks[i] = reg
			return
		}
	}
	r.hooks = append(r.hooks, reg)
}

// Unregister removes the hook with the given name
func (r *HookRegistry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hooks = slices.DeleteFunc(r.hooks, func(reg registration) bool {
		return reg.hook.Name() == name
	})
}

// forEvent returns the hooks reacting to eventType, in registration order.
// Hooks without event types react to everything.
func (r *HookRegistry) forEvent(eventType string) []registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]registration, 0, len(r.hooks))
	for _, reg := range r.hooks {
		if reg.matches(eventType) {
			result = append(result, reg)
		}
	}
	return result
}

// Names lists the registered hook names in order
func (r *HookRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.hooks))
	for i, reg := range r.hooks {
		names[i] = reg.hook.Name()
	}
	return names
}

// Count returns the number of registered hooks
func (r *HookRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.hooks)
}
