// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package script

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dop251/goja"

	"github.com/mia-platform/pagelog/internal/logger"
	"github.com/mia-platform/pagelog/internal/page"
	"github.com/mia-platform/pagelog/internal/pagelog"
)

const loggerName = "pagelog:script"

var (
	// ErrScript wraps every failure raised while running a script.
	ErrScript = errors.New("script error")
)

// Host is a JavaScript runtime bound to a page document and a console.
// A Host must not be used by more than one goroutine at a time.
type Host struct {
	vm       *goja.Runtime
	document *page.Document
	console  pagelog.Console
}

// NewHost creates a runtime whose globals are bound to document and console. The pagelog
// global is a facade over log; when log is nil a Logger with default settings is used.
func NewHost(document *page.Document, console pagelog.Console, log *pagelog.Logger) (*Host, error) {
	if document == nil {
		document = page.NewDocument("")
	}
	if log == nil {
		log = pagelog.New(document, console)
	}

	h := &Host{
		vm:       goja.New(),
		document: document,
		console:  console,
	}

	globals := map[string]func() (*goja.Object, error){
		"console":  h.consoleObject,
		"document": h.documentObject,
		"Log":      h.logClassObject,
		"pagelog":  func() (*goja.Object, error) { return h.facadeObject(log) },
	}

	for name, build := range globals {
		obj, err := build()
		if err != nil {
			return nil, fmt.Errorf("%w: binding %s: %w", ErrScript, name, err)
		}
		if err := h.vm.Set(name, obj); err != nil {
			return nil, fmt.Errorf("%w: binding %s: %w", ErrScript, name, err)
		}
	}

	return h, nil
}

// Document returns the page the scripts write to.
func (h *Host) Document() *page.Document {
	return h.document
}

// Run executes source, identified by name in error messages. Cancelling ctx interrupts
// the script.
func (h *Host) Run(ctx context.Context, name, source string) error {
	log := logger.FromContext(ctx).WithName(loggerName)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrScript, name, err)
	}

	stop := context.AfterFunc(ctx, func() {
		h.vm.Interrupt(ctx.Err())
	})
	defer func() {
		stop()
		h.vm.ClearInterrupt()
	}()

	log.Debug("running script", "name", name)
	if _, err := h.vm.RunScript(name, source); err != nil {
		var interrupted *goja.InterruptedError
		if errors.As(err, &interrupted) {
			log.Warn("script interrupted", "name", name)
			return fmt.Errorf("%w: %s: %w", ErrScript, name, context.Cause(ctx))
		}

		log.Error("script failed", "name", name, "error", err.Error())
		return fmt.Errorf("%w: %s: %w", ErrScript, name, err)
	}

	log.Debug("script completed", "name", name)
	return nil
}

// joinArguments renders the call arguments the way a console prints them.
func joinArguments(call goja.FunctionCall) string {
	parts := make([]string, 0, len(call.Arguments))
	for _, arg := range call.Arguments {
		parts = append(parts, arg.String())
	}
	return strings.Join(parts, " ")
}

// isUndefined reports whether an argument was omitted. null is a value and is not defaulted.
func isUndefined(v goja.Value) bool {
	return v == nil || goja.IsUndefined(v)
}

func stringArgument(call goja.FunctionCall, index int, fallback string) string {
	if v := call.Argument(index); !isUndefined(v) {
		return v.String()
	}
	return fallback
}

func intArgument(call goja.FunctionCall, index int, fallback int) int {
	if v := call.Argument(index); !isUndefined(v) {
		return int(v.ToInteger())
	}
	return fallback
}

func boolArgument(call goja.FunctionCall, index int, fallback bool) bool {
	if v := call.Argument(index); !isUndefined(v) {
		return v.ToBoolean()
	}
	return fallback
}

// severityArgument maps a LogTypes value to a severity; missing or unknown values are Plain.
func severityArgument(call goja.FunctionCall, index int) pagelog.Severity {
	return pagelog.SeverityFromString(stringArgument(call, index, ""))
}
