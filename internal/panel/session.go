package panel

import (
	"fmt"

	oerrors "github.com/logpanel/cli/internal/errors"
)

// Session tracks the current panel while navigating a registry.
type Session struct {
	reg     *Registry
	current Module
}

// NewSession starts a session at the given module, normally the one returned
// by BuildRegistry.
func NewSession(reg *Registry, current Module) *Session {
	return &Session{reg: reg, current: current}
}

// Registry returns the underlying registry.
func (s *Session) Registry() *Registry {
	return s.reg
}

// Current returns the current module.
func (s *Session) Current() Module {
	return s.current
}

// Next moves to the following active module.
func (s *Session) Next() Module {
	if m, err := s.reg.Next(s.current); err == nil {
		s.current = m
	}
	return s.current
}

// Prev moves to the preceding active module.
func (s *Session) Prev() Module {
	if m, err := s.reg.Prev(s.current); err == nil {
		s.current = m
	}
	return s.current
}

// RemoveCurrent removes the current module and moves to the module that
// followed it. The last active module cannot be removed.
func (s *Session) RemoveCurrent() error {
	if s.reg.Count() <= 1 {
		return fmt.Errorf("cannot remove the last panel %s: %w", s.current, oerrors.ErrPrecondition)
	}

	next, err := s.reg.Next(s.current)
	if err != nil {
		return err
	}
	if err := s.reg.Remove(s.current); err != nil {
		return err
	}
	s.current = next
	return nil
}
