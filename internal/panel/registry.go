package panel

import (
	"fmt"

	oerrors "github.com/logpanel/cli/internal/errors"
)

// Registry is the ordered set of active modules. Active entries occupy a
// contiguous prefix of a fixed-capacity array in canonical order; slots past
// the prefix are unused. A Registry is built once per run, mutated only by
// Remove, and is not safe for concurrent use.
type Registry struct {
	slots [TotalModules]Module
	n     int
}

// newRegistry returns a registry holding mods in the given order.
func newRegistry(mods ...Module) *Registry {
	r := &Registry{}
	for _, m := range mods {
		r.slots[r.n] = m
		r.n++
	}
	return r
}

// IndexOf returns the position of m within the active prefix.
func (r *Registry) IndexOf(m Module) (int, error) {
	for i := 0; i < r.n; i++ {
		if r.slots[i] == m {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%s: %w", m, oerrors.ErrModuleNotFound)
}

// Contains reports whether m is active.
func (r *Registry) Contains(m Module) bool {
	_, err := r.IndexOf(m)
	return err == nil
}

// Count returns the number of active modules.
func (r *Registry) Count() int {
	return r.n
}

// Modules returns a copy of the active modules in order.
func (r *Registry) Modules() []Module {
	out := make([]Module, r.n)
	copy(out, r.slots[:r.n])
	return out
}

// Remove deletes m, shifting later entries one slot left.
func (r *Registry) Remove(m Module) error {
	idx, err := r.IndexOf(m)
	if err != nil {
		return err
	}

	copy(r.slots[idx:], r.slots[idx+1:r.n])
	r.n--
	r.slots[r.n] = 0

	return nil
}

// Next returns the module after m, wrapping to the head.
// m must be active.
func (r *Registry) Next(m Module) (Module, error) {
	idx, err := r.IndexOf(m)
	if err != nil {
		return 0, fmt.Errorf("next from %s: %w", m, oerrors.ErrPrecondition)
	}

	next := idx + 1
	if next == TotalModules || next >= r.n {
		return r.slots[0], nil
	}
	return r.slots[next], nil
}

// Prev returns the module before m, wrapping to the tail. An empty registry
// yields the first canonical module. m must otherwise be active.
func (r *Registry) Prev(m Module) (Module, error) {
	if r.n == 0 {
		return Visitors, nil
	}

	idx, err := r.IndexOf(m)
	if err != nil {
		return 0, fmt.Errorf("prev from %s: %w", m, oerrors.ErrPrecondition)
	}

	if prev := idx - 1; prev >= 0 {
		return r.slots[prev], nil
	}

	return r.slots[r.n-1], nil
}
