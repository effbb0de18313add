package panel

import (
	"errors"
	"slices"
	"strings"

	oerrors "github.com/logpanel/cli/internal/errors"
	"github.com/logpanel/cli/internal/output"
)

// Filter holds the configured enable and ignore panel name lists.
type Filter struct {
	Enable []string
	Ignore []string
}

// Policy decides which modules are active. Explicit enablement overrides an
// ignore entry when the registry is built.
type Policy struct {
	filter  Filter
	enabled map[Module]bool
	ignored map[Module]bool
}

// NewPolicy resolves the filter's names once. Names that match no module are
// skipped.
func NewPolicy(f Filter) *Policy {
	return &Policy{
		filter:  f,
		enabled: resolveNames("enable", f.Enable),
		ignored: resolveNames("ignore", f.Ignore),
	}
}

func resolveNames(list string, names []string) map[Module]bool {
	set := make(map[Module]bool, len(names))
	for _, name := range names {
		m, ok := Resolve(name)
		if !ok {
			output.Debug("skipping unresolved panel name", "list", list, "name", name)
			continue
		}
		set[m] = true
	}
	return set
}

// IsEnabled reports whether m is named in the enable list.
func (p *Policy) IsEnabled(m Module) bool {
	return p.enabled[m]
}

// IsIgnored reports whether m is named in the ignore list.
func (p *Policy) IsIgnored(m Module) bool {
	return p.ignored[m]
}

// DeclaredIgnored reports whether name appears verbatim in the ignore list.
func (p *Policy) DeclaredIgnored(name string) bool {
	return slices.Contains(p.filter.Ignore, name)
}

// BuildRegistry returns the active modules in canonical order together with
// the first active module. When no module is active the first canonical
// module is returned without being added to the registry.
func (p *Policy) BuildRegistry() (*Registry, Module) {
	var active []Module
	for _, m := range All() {
		if !p.IsIgnored(m) || p.IsEnabled(m) {
			active = append(active, m)
		}
	}

	reg := newRegistry(active...)
	if reg.Count() == 0 {
		return reg, Visitors
	}
	return reg, active[0]
}

// Prerequisite ties a module to the log-format token it needs to be
// meaningful.
type Prerequisite struct {
	Module Module
	Token  string
}

// Prerequisites lists modules that depend on a log-format capability.
var Prerequisites = []Prerequisite{
	{Module: VirtualHosts, Token: "%v"},
}

// ApplyPrerequisiteExclusion removes m from reg when its capability is absent
// and the user has not listed it as ignored. This runs after BuildRegistry
// and removes m even when it was explicitly enabled. It reports whether m
// was removed.
func ApplyPrerequisiteExclusion(reg *Registry, m Module, capabilityPresent, declaredIgnored bool) bool {
	if capabilityPresent || declaredIgnored {
		return false
	}

	if err := reg.Remove(m); err != nil {
		if !errors.Is(err, oerrors.ErrModuleNotFound) {
			output.Warn("removing panel", "panel", m, "error", err)
		}
		return false
	}
	return true
}

// VerifyPanels applies every prerequisite against logFormat and returns the
// modules that were removed. An empty logFormat, or an ignore list with at
// least TotalModules entries, leaves reg untouched.
func (p *Policy) VerifyPanels(reg *Registry, logFormat string) []Module {
	if logFormat == "" || len(p.filter.Ignore) >= TotalModules {
		return nil
	}

	var removed []Module
	for _, pre := range Prerequisites {
		present := strings.Contains(logFormat, pre.Token)
		if ApplyPrerequisiteExclusion(reg, pre.Module, present, p.DeclaredIgnored(pre.Module.String())) {
			output.Debug("panel removed, log format lacks token",
				"panel", pre.Module,
				"token", pre.Token,
			)
			removed = append(removed, pre.Module)
		}
	}
	return removed
}
