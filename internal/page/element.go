// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package page

import (
	"strings"
	"sync"

	"github.com/mia-platform/pagelog/internal/pagelog"
)

var _ pagelog.TextBuffer = &Element{}

// Element is a scrollable text region of the page.
type Element struct {
	id         string
	rows       int
	cols       int
	attributes string

	lock  sync.RWMutex
	value strings.Builder
}

// ID returns the element id.
func (e *Element) ID() string {
	return e.id
}

// Rows returns the height of the element in text rows.
func (e *Element) Rows() int {
	return e.rows
}

// Cols returns the width of the element in text columns.
func (e *Element) Cols() int {
	return e.cols
}

// Attributes returns the raw attribute string given when the element was appended.
func (e *Element) Attributes() string {
	return e.attributes
}

// Value returns the current content of the element.
func (e *Element) Value() string {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return e.value.String()
}

// SetValue replaces the content of the element.
func (e *Element) SetValue(value string) {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.value.Reset()
	e.value.WriteString(value)
}

// Append adds text at the end of the element content.
func (e *Element) Append(text string) {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.value.WriteString(text)
}

// Reset empties the element content.
func (e *Element) Reset() {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.value.Reset()
}
