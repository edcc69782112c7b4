// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pagelog

import (
	"strings"
)

type consoleCall struct {
	channel string
	message string
}

type recordingConsole struct {
	calls  []consoleCall
	clears int
}

func (c *recordingConsole) Log(message string)   { c.record("log", message) }
func (c *recordingConsole) Info(message string)  { c.record("info", message) }
func (c *recordingConsole) Debug(message string) { c.record("debug", message) }
func (c *recordingConsole) Warn(message string)  { c.record("warn", message) }
func (c *recordingConsole) Error(message string) { c.record("error", message) }
func (c *recordingConsole) Clear()               { c.clears++ }

func (c *recordingConsole) record(channel, message string) {
	c.calls = append(c.calls, consoleCall{channel: channel, message: message})
}

type textArea struct {
	rows, cols int
	attributes string
	builder    strings.Builder
	appends    int
}

func (a *textArea) Append(text string) {
	a.appends++
	a.builder.WriteString(text)
}

func (a *textArea) Reset() {
	a.builder.Reset()
}

type mapDocument struct {
	elements map[string]*textArea
	lookups  []string
}

func newMapDocument(ids ...string) *mapDocument {
	doc := &mapDocument{elements: make(map[string]*textArea)}
	for _, id := range ids {
		doc.elements[id] = &textArea{}
	}
	return doc
}

func (d *mapDocument) ElementByID(id string) (TextBuffer, bool) {
	d.lookups = append(d.lookups, id)
	element, ok := d.elements[id]
	if !ok {
		return nil, false
	}
	return element, true
}

func (d *mapDocument) AppendTextarea(id string, rows, cols int, attributes string) {
	d.elements[id] = &textArea{rows: rows, cols: cols, attributes: attributes}
}

var (
	_ Console  = &recordingConsole{}
	_ Document = &mapDocument{}
)
