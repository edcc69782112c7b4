// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package script

import (
	"github.com/dop251/goja"

	"github.com/mia-platform/pagelog/internal/pagelog"
)

type method = func(call goja.FunctionCall) goja.Value

func setMethods(obj *goja.Object, methods map[string]method) error {
	for name, fn := range methods {
		if err := obj.Set(name, fn); err != nil {
			return err
		}
	}
	return nil
}

func (h *Host) accessor(obj *goja.Object, name string, get func() any, set func(goja.Value)) error {
	getter := h.vm.ToValue(func(goja.FunctionCall) goja.Value {
		return h.vm.ToValue(get())
	})
	setter := h.vm.ToValue(func(call goja.FunctionCall) goja.Value {
		set(call.Argument(0))
		return goja.Undefined()
	})
	return obj.DefineAccessorProperty(name, getter, setter, goja.FLAG_FALSE, goja.FLAG_TRUE)
}

// consoleObject binds the console global to the host console.
func (h *Host) consoleObject() (*goja.Object, error) {
	obj := h.vm.NewObject()
	if h.console == nil {
		noop := func(goja.FunctionCall) goja.Value { return goja.Undefined() }
		return obj, setMethods(obj, map[string]method{
			"log": noop, "info": noop, "debug": noop, "warn": noop, "error": noop, "clear": noop,
		})
	}

	channel := func(emit func(string)) method {
		return func(call goja.FunctionCall) goja.Value {
			emit(joinArguments(call))
			return goja.Undefined()
		}
	}

	return obj, setMethods(obj, map[string]method{
		"log":   channel(h.console.Log),
		"info":  channel(h.console.Info),
		"debug": channel(h.console.Debug),
		"warn":  channel(h.console.Warn),
		"error": channel(h.console.Error),
		"clear": func(goja.FunctionCall) goja.Value {
			h.console.Clear()
			return goja.Undefined()
		},
	})
}

// documentObject binds the document global; getElementById returns null for unknown ids.
func (h *Host) documentObject() (*goja.Object, error) {
	obj := h.vm.NewObject()
	return obj, setMethods(obj, map[string]method{
		"getElementById": func(call goja.FunctionCall) goja.Value {
			element, found := h.document.Element(stringArgument(call, 0, ""))
			if !found {
				return goja.Null()
			}

			handle := h.vm.NewObject()
			if err := handle.Set("id", element.ID()); err != nil {
				panic(h.vm.NewGoError(err))
			}
			err := h.accessor(handle, "value",
				func() any { return element.Value() },
				func(v goja.Value) { element.SetValue(v.String()) },
			)
			if err != nil {
				panic(h.vm.NewGoError(err))
			}
			return handle
		},
	})
}

// logClassObject binds the Log global with its static members and a create factory.
func (h *Host) logClassObject() (*goja.Object, error) {
	obj := h.vm.NewObject()

	types := h.vm.NewObject()
	for _, severity := range pagelog.Severities() {
		if err := types.Set(severity.Label(), severity.Label()); err != nil {
			return nil, err
		}
	}

	if err := obj.Set("LogTypes", types); err != nil {
		return nil, err
	}
	if err := obj.Set("LineSingle", pagelog.SingleLine); err != nil {
		return nil, err
	}
	if err := obj.Set("LineDouble", pagelog.DoubleLine); err != nil {
		return nil, err
	}

	return obj, setMethods(obj, map[string]method{
		"create": func(call goja.FunctionCall) goja.Value {
			log := pagelog.New(h.document, h.console,
				pagelog.WithTargetElementID(stringArgument(call, 0, "")),
				pagelog.WithConsoleEnabled(boolArgument(call, 1, true)),
				pagelog.WithTextRegionEnabled(boolArgument(call, 2, true)),
			)

			facade, err := h.facadeObject(log)
			if err != nil {
				panic(h.vm.NewGoError(err))
			}
			return facade
		},
	})
}

// facadeObject exposes log to scripts with the page script method names.
func (h *Host) facadeObject(log *pagelog.Logger) (*goja.Object, error) {
	obj := h.vm.NewObject()

	if err := h.accessor(obj, "textareaId",
		func() any { return log.TargetElementID() },
		func(v goja.Value) { log.SetTargetElementID(v.String()) },
	); err != nil {
		return nil, err
	}
	if err := h.accessor(obj, "consoleLoggingEnabled",
		func() any { return log.ConsoleEnabled() },
		func(v goja.Value) { log.SetConsoleEnabled(v.ToBoolean()) },
	); err != nil {
		return nil, err
	}
	if err := h.accessor(obj, "textareaLoggingEnabled",
		func() any { return log.TextRegionEnabled() },
		func(v goja.Value) { log.SetTextRegionEnabled(v.ToBoolean()) },
	); err != nil {
		return nil, err
	}

	return obj, setMethods(obj, map[string]method{
		"log": func(call goja.FunctionCall) goja.Value {
			log.Log(stringArgument(call, 0, "undefined"), severityArgument(call, 1))
			return goja.Undefined()
		},
		"logSingleLine": func(goja.FunctionCall) goja.Value {
			log.LogSingleLine()
			return goja.Undefined()
		},
		"logDoubleLine": func(goja.FunctionCall) goja.Value {
			log.LogDoubleLine()
			return goja.Undefined()
		},
		"clearLogs": func(goja.FunctionCall) goja.Value {
			log.ClearLogs()
			return goja.Undefined()
		},
		"appendTextareaElement": func(call goja.FunctionCall) goja.Value {
			log.BootstrapDisplayElement(
				stringArgument(call, 0, pagelog.DefaultElementID),
				intArgument(call, 1, pagelog.DefaultRows),
				intArgument(call, 2, pagelog.DefaultCols),
				stringArgument(call, 3, ""),
			)
			return goja.Undefined()
		},
		"testLogging": func(goja.FunctionCall) goja.Value {
			log.SelfTest()
			return goja.Undefined()
		},
	})
}
