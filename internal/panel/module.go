// Package panel manages the set and order of report panels: resolving panel
// names to module identities, deciding which modules are active, and
// navigating the active registry.
package panel

// Module identifies one report panel. Values follow the canonical display
// order and never change at runtime.
type Module int

// Canonical modules, in default display and navigation order.
const (
	Visitors Module = iota
	Requests
	RequestsStatic
	NotFound
	Hosts
	OS
	Browsers
	VisitTimes
	VirtualHosts
	Referrers
	ReferringSites
	Keyphrases
	GeoLocation
	StatusCodes
)

// TotalModules is the number of canonical modules and the registry capacity.
const TotalModules = int(StatusCodes) + 1

type moduleInfo struct {
	name  string
	title string
}

var modules = [TotalModules]moduleInfo{
	Visitors:       {"VISITORS", "Unique visitors per day"},
	Requests:       {"REQUESTS", "Requested files (URLs)"},
	RequestsStatic: {"REQUESTS_STATIC", "Static requests"},
	NotFound:       {"NOT_FOUND", "Not found URLs (404s)"},
	Hosts:          {"HOSTS", "Visitor hostnames and IPs"},
	OS:             {"OS", "Operating systems"},
	Browsers:       {"BROWSERS", "Browsers"},
	VisitTimes:     {"VISIT_TIMES", "Time distribution"},
	VirtualHosts:   {"VIRTUAL_HOSTS", "Virtual hosts"},
	Referrers:      {"REFERRERS", "Referrer URLs"},
	ReferringSites: {"REFERRING_SITES", "Referring sites"},
	Keyphrases:     {"KEYPHRASES", "Keyphrases from Google's search engine"},
	GeoLocation:    {"GEO_LOCATION", "Geo location"},
	StatusCodes:    {"STATUS_CODES", "HTTP status codes"},
}

var byName = func() map[string]Module {
	m := make(map[string]Module, TotalModules)
	for i, info := range modules {
		m[info.name] = Module(i)
	}
	return m
}()

// Resolve returns the module whose name matches exactly (case-sensitive).
func Resolve(name string) (Module, bool) {
	m, ok := byName[name]
	return m, ok
}

// All returns every module in canonical order.
func All() []Module {
	out := make([]Module, TotalModules)
	for i := range out {
		out[i] = Module(i)
	}
	return out
}

// Names returns every module name in canonical order.
func Names() []string {
	out := make([]string, TotalModules)
	for i, info := range modules {
		out[i] = info.name
	}
	return out
}

// Valid reports whether m is a canonical module.
func (m Module) Valid() bool {
	return m >= 0 && int(m) < TotalModules
}

// String returns the stable module name, e.g. "STATUS_CODES".
func (m Module) String() string {
	if !m.Valid() {
		return "UNKNOWN"
	}
	return modules[m].name
}

// Title returns the human-readable panel heading.
func (m Module) Title() string {
	if !m.Valid() {
		return ""
	}
	return modules[m].title
}
