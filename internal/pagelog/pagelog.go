// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pagelog

import (
	"errors"
	"fmt"
)

const (
	// DefaultElementID is the id used by BootstrapDefaultDisplayElement.
	DefaultElementID = "textlog"
	// DefaultRows is the height of a bootstrapped display element.
	DefaultRows = 20
	// DefaultCols is the width of a bootstrapped display element.
	DefaultCols = 80
)

var (
	// ErrDisplayElementNotFound reports that the display element is not configured or cannot be found on the page.
	ErrDisplayElementNotFound = errors.New("display element not found or not specified")
)

// Option customizes a Logger at construction time.
type Option func(*Logger)

// WithTargetElementID sets the id of the display element.
func WithTargetElementID(id string) Option {
	return func(l *Logger) {
		l.targetElementID = id
	}
}

// WithConsoleEnabled toggles the console sink.
func WithConsoleEnabled(enabled bool) Option {
	return func(l *Logger) {
		l.consoleEnabled = enabled
	}
}

// WithTextRegionEnabled toggles the display element sink.
func WithTextRegionEnabled(enabled bool) Option {
	return func(l *Logger) {
		l.textRegionEnabled = enabled
	}
}

// Logger dispatches messages to the display element and to the console.
// It is not safe for concurrent use; the Document implementation decides
// how concurrent writers to the same element are handled.
type Logger struct {
	document Document
	console  Console

	targetElementID   string
	consoleEnabled    bool
	textRegionEnabled bool
}

// New creates a Logger writing to the given document and console. Without options
// no display element is targeted and both sinks are enabled.
func New(document Document, console Console, opts ...Option) *Logger {
	l := &Logger{
		document:          document,
		console:           console,
		consoleEnabled:    true,
		textRegionEnabled: true,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// TargetElementID returns the id of the display element, empty when none is configured.
func (l *Logger) TargetElementID() string {
	return l.targetElementID
}

// SetTargetElementID changes the id of the display element.
func (l *Logger) SetTargetElementID(id string) {
	l.targetElementID = id
}

// ConsoleEnabled reports whether the console sink is enabled.
func (l *Logger) ConsoleEnabled() bool {
	return l.consoleEnabled
}

// SetConsoleEnabled toggles the console sink.
func (l *Logger) SetConsoleEnabled(enabled bool) {
	l.consoleEnabled = enabled
}

// TextRegionEnabled reports whether the display element sink is enabled.
func (l *Logger) TextRegionEnabled() bool {
	return l.textRegionEnabled
}

// SetTextRegionEnabled toggles the display element sink.
func (l *Logger) SetTextRegionEnabled(enabled bool) {
	l.textRegionEnabled = enabled
}

// resolveDisplayElement returns the configured display element, if any.
func (l *Logger) resolveDisplayElement() (TextBuffer, bool) {
	if l.targetElementID == "" || l.document == nil {
		return nil, false
	}

	element, ok := l.document.ElementByID(l.targetElementID)
	if !ok || element == nil {
		return nil, false
	}

	return element, true
}

// emitToDisplay appends the labelled message to the display element. A missing element
// is reported on the console error channel instead.
func (l *Logger) emitToDisplay(message string, severity Severity) {
	element, ok := l.resolveDisplayElement()
	if !ok {
		err := fmt.Errorf("%w: %q", ErrDisplayElementNotFound, l.targetElementID)
		l.emitToConsole(err.Error(), Error)
		return
	}

	element.Append(severity.prefix() + message + "\n")
}

// emitToConsole writes the message, unmodified, on the channel matching severity.
func (l *Logger) emitToConsole(message string, severity Severity) {
	if l.console == nil {
		return
	}

	switch severity {
	case Info:
		l.console.Info(message)
	case Debug:
		l.console.Debug(message)
	case Warn:
		l.console.Warn(message)
	case Error:
		l.console.Error(message)
	default:
		l.console.Log(message)
	}
}

// Log sends message to every enabled sink. When the text region is enabled but no
// element id is configured the message falls back to the console, written only once
// even if the console sink is enabled too.
func (l *Logger) Log(message string, severity Severity) {
	fallbackToConsole := false

	if l.textRegionEnabled {
		if l.targetElementID == "" {
			fallbackToConsole = true
		} else {
			l.emitToDisplay(message, severity)
		}
	}

	if l.consoleEnabled || fallbackToConsole {
		l.emitToConsole(message, severity)
	}
}

// Print logs message without a severity.
func (l *Logger) Print(message string) {
	l.Log(message, Plain)
}

// Info logs message with the Info severity.
func (l *Logger) Info(message string) {
	l.Log(message, Info)
}

// Debug logs message with the Debug severity.
func (l *Logger) Debug(message string) {
	l.Log(message, Debug)
}

// Warn logs message with the Warn severity.
func (l *Logger) Warn(message string) {
	l.Log(message, Warn)
}

// Error logs message with the Error severity.
func (l *Logger) Error(message string) {
	l.Log(message, Error)
}

// LogSingleLine logs the SingleLine banner.
func (l *Logger) LogSingleLine() {
	l.Log(SingleLine, Plain)
}

// LogDoubleLine logs the DoubleLine banner.
func (l *Logger) LogDoubleLine() {
	l.Log(DoubleLine, Plain)
}

// ClearLogs empties the display element when it can be found and always clears the console.
func (l *Logger) ClearLogs() {
	if element, ok := l.resolveDisplayElement(); ok {
		element.Reset()
	}

	if l.console != nil {
		l.console.Clear()
	}
}

// BootstrapDisplayElement targets id and appends a new display element with that id
// and the given size to the page. attributes is added verbatim to the element markup.
func (l *Logger) BootstrapDisplayElement(id string, rows, cols int, attributes string) {
	l.targetElementID = id

	if l.document != nil {
		l.document.AppendTextarea(id, rows, cols, attributes)
	}
}

// BootstrapDefaultDisplayElement calls BootstrapDisplayElement with the default id and size.
func (l *Logger) BootstrapDefaultDisplayElement() {
	l.BootstrapDisplayElement(DefaultElementID, DefaultRows, DefaultCols, "")
}

// SelfTest runs a fixed sequence that goes through every sink combination and severity.
// Both sinks are left enabled afterwards.
func (l *Logger) SelfTest() {
	l.SetConsoleEnabled(true)
	l.SetTextRegionEnabled(true)
	l.ClearLogs()
	l.LogDoubleLine()

	l.SetConsoleEnabled(false)
	l.Print("Generic message to textarea")

	l.SetTextRegionEnabled(false)
	l.SetConsoleEnabled(true)
	l.Print("Generic message to console")

	l.SetTextRegionEnabled(true)
	l.LogSingleLine()
	l.Print("Generic message to textarea and console")
	l.Log("Log message to textarea and console", Plain)
	l.Log("Info message to textarea and console", Info)
	l.Log("Debug message to textarea and console", Debug)
	l.Log("Warn message to textarea and console", Warn)
	l.Log("Error message to textarea and console", Error)
	l.Log("Unspecified type message to textarea and console", Severity(-1))
	l.LogDoubleLine()
}
