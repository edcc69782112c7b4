// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pagelog

// TextBuffer is a mutable handle over the content of a display element.
type TextBuffer interface {
	// Append adds text at the end of the buffer.
	Append(text string)
	// Reset empties the buffer.
	Reset()
}

// Document is the page hosting the display elements.
type Document interface {
	// ElementByID looks up a display element. The boolean reports whether it was found.
	ElementByID(id string) (TextBuffer, bool)
	// AppendTextarea adds a new text region element to the page root.
	AppendTextarea(id string, rows, cols int, attributes string)
}

// Console is the host console, exposing one channel per severity plus a clear operation.
type Console interface {
	Log(message string)
	Info(message string)
	Debug(message string)
	Warn(message string)
	Error(message string)
	Clear()
}
