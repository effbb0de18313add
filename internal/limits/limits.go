// Package limits decides how many rows each panel may render for an output
// target.
package limits

import "strings"

const (
	// StandardCeiling bounds rows for static outputs and the terminal UI.
	StandardCeiling = 366

	// RealTimeCeiling bounds rows while streaming real-time HTML.
	RealTimeCeiling = 50
)

// Output types recognised in the requested formats.
const (
	TypeCSV  = "csv"
	TypeJSON = "json"
	TypeHTML = "html"
)

// Flags describes the output target for one row-limit query.
type Flags struct {
	// MaxItems is the configured row limit. Zero or negative means unset.
	MaxItems int `json:"maxItems"`

	// OutputStdout reports that the report is written to standard output
	// instead of the interactive terminal UI.
	OutputStdout bool `json:"outputStdout"`

	// RealTimeHTML reports that real-time HTML streaming is active.
	RealTimeHTML bool `json:"realTimeHTML"`

	// Formats lists requested output entries: type names ("csv") or file
	// names ("report.html").
	Formats []string `json:"formats"`

	// StdoutIsTerminal reports whether standard output is attached to a
	// terminal device.
	StdoutIsTerminal bool `json:"stdoutIsTerminal"`
}

// HasFormat reports whether any requested entry selects typ, either by name
// or by file extension.
func (f Flags) HasFormat(typ string) bool {
	for _, entry := range f.Formats {
		if entry == typ {
			return true
		}
		if dot := strings.LastIndexByte(entry, '.'); dot >= 0 && entry[dot+1:] == typ {
			return true
		}
	}
	return false
}

// Rule names the decision that produced a row limit.
type Rule string

const (
	RuleDefault        Rule = "default"
	RuleTerminalUI     Rule = "terminal-ui"
	RuleRealTime       Rule = "real-time"
	RuleStdoutCapped   Rule = "stdout-capped"
	RuleStdoutUncapped Rule = "stdout-uncapped"
	RuleStdoutDefault  Rule = "stdout-default"
)

// Decision is a row limit and the rule that chose it.
type Decision struct {
	MaxRows int  `json:"maxRows"`
	Rule    Rule `json:"rule"`
}

// MaxRows returns the maximum number of rows per panel.
func MaxRows(f Flags) int {
	return Decide(f).MaxRows
}

// Decide evaluates the row-limit rules in order; the first match wins.
func Decide(f Flags) Decision {
	// no limit configured
	if f.MaxItems <= 0 {
		if f.RealTimeHTML {
			return Decision{RealTimeCeiling, RuleDefault}
		}
		return Decision{StandardCeiling, RuleDefault}
	}

	// interactive terminal UI
	if !f.OutputStdout {
		return Decision{min(f.MaxItems, StandardCeiling), RuleTerminalUI}
	}

	if f.RealTimeHTML {
		return Decision{min(f.MaxItems, RealTimeCeiling), RuleRealTime}
	}

	d := Decision{StandardCeiling, RuleStdoutDefault}
	if f.HasFormat(TypeCSV) {
		d = Decision{f.MaxItems, RuleStdoutUncapped}
	}
	if f.HasFormat(TypeJSON) && f.MaxItems > 0 {
		d = Decision{f.MaxItems, RuleStdoutUncapped}
	}
	// HTML, the default format, or a redirected stdout take priority when
	// several formats are requested.
	if f.HasFormat(TypeHTML) || len(f.Formats) == 0 || !f.StdoutIsTerminal {
		d = Decision{min(f.MaxItems, StandardCeiling), RuleStdoutCapped}
	}
	return d
}
