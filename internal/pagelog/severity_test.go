// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pagelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Log", Plain.Label())
	assert.Equal(t, "Info", Info.Label())
	assert.Equal(t, "Debug", Debug.Label())
	assert.Equal(t, "Warn", Warn.Label())
	assert.Equal(t, "Error", Error.Label())
	assert.Equal(t, "Log", Severity(42).Label())
	assert.Equal(t, "Info", Info.String())

	assert.Equal(t, []Severity{Plain, Info, Debug, Warn, Error}, Severities())
}

func TestSeverityFromString(t *testing.T) {
	t.Parallel()

	for _, severity := range Severities() {
		assert.Equal(t, severity, SeverityFromString(severity.Label()))
		assert.Equal(t, severity, SeverityFromString(strings.ToLower(severity.Label())))
	}

	assert.Equal(t, Warn, SeverityFromString("  WARN "))
	assert.Equal(t, Plain, SeverityFromString(""))
	assert.Equal(t, Plain, SeverityFromString("Warning"))
}

func TestBanners(t *testing.T) {
	t.Parallel()

	assert.Len(t, SingleLine, 60)
	assert.Equal(t, strings.Repeat("-", 60), SingleLine)
	assert.Len(t, DoubleLine, 60)
	assert.Equal(t, strings.Repeat("=", 60), DoubleLine)
}
