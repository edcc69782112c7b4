// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pagelog

import (
	"strings"
)

// Severity classifies a message. It selects the console channel and the label
// prefixed to text region lines.
type Severity int

const (
	// Plain is the unspecified severity, routed to the plain log channel.
	Plain Severity = iota
	Info
	Debug
	Warn
	Error
)

const (
	// SingleLine is a banner of 60 dashes.
	SingleLine = "------------------------------------------------------------"
	// DoubleLine is a banner of 60 equal signs.
	DoubleLine = "============================================================"
)

// Severities returns every known severity in declaration order.
func Severities() []Severity {
	return []Severity{Plain, Info, Debug, Warn, Error}
}

// Label returns the textual label of the severity. Unknown values are labelled as Plain.
func (s Severity) Label() string {
	switch s {
	case Info:
		return "Info"
	case Debug:
		return "Debug"
	case Warn:
		return "Warn"
	case Error:
		return "Error"
	default:
		return "Log"
	}
}

func (s Severity) String() string {
	return s.Label()
}

// SeverityFromString parses a label case insensitively, returning Plain when it is unknown.
func SeverityFromString(label string) Severity {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "INFO":
		return Info
	case "DEBUG":
		return Debug
	case "WARN":
		return Warn
	case "ERROR":
		return Error
	default:
		return Plain
	}
}

// prefix is the text prepended to a message written to the display element.
func (s Severity) prefix() string {
	return "[" + s.Label() + "] "
}
