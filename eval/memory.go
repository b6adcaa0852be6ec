// SPDX-License-Identifier: MIT

package eval

import (
	"fmt"
	"unicode"
)

// Memory is the calculator's named-variable store. Stored values flow into
// evaluations only through Snapshot, so two Memories never interfere.
// The zero value is ready to use. Memory is not safe for concurrent use.
type Memory struct {
	vars map[string]float64
}

// NewMemory returns a Memory preloaded with vars (copied).
func NewMemory(vars map[string]float64) (*Memory, error) {
	m := &Memory{}
	for name, v := range vars {
		if err := m.Store(name, v); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Store binds name to v, replacing any previous value.
// Errors: ErrBadName when name is not an identifier or is a function name.
func (m *Memory) Store(name string, v float64) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if m.vars == nil {
		m.vars = make(map[string]float64)
	}
	m.vars[name] = v

	return nil
}

// Recall returns the value bound to name.
func (m *Memory) Recall(name string) (float64, bool) {
	v, ok := m.vars[name]

	return v, ok
}

// Delete removes name. Deleting an absent name is a no-op.
func (m *Memory) Delete(name string) { delete(m.vars, name) }

// Clear removes every binding.
func (m *Memory) Clear() { m.vars = nil }

// Len reports the number of bindings.
func (m *Memory) Len() int { return len(m.vars) }

// Snapshot returns the bindings as a fresh Context.
func (m *Memory) Snapshot() Context { return Context(m.vars).Clone() }

// ValidateName reports ErrBadName unless name is an identifier
// (letter or underscore, then letters, digits, underscores) that does not
// collide with a function of the expression environment.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrBadName)
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	if isFunctionName(name) {
		return fmt.Errorf("%w: %q is a function", ErrBadName, name)
	}

	return nil
}
