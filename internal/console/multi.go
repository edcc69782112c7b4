// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package console

import (
	"github.com/mia-platform/pagelog/internal/pagelog"
)

type multiConsole []pagelog.Console

// Multi returns a console duplicating every call to each of the given consoles, in order.
// Nil consoles are skipped.
func Multi(consoles ...pagelog.Console) pagelog.Console {
	all := make(multiConsole, 0, len(consoles))
	for _, c := range consoles {
		if c != nil {
			all = append(all, c)
		}
	}
	return all
}

func (m multiConsole) Log(message string) {
	for _, c := range m {
		c.Log(message)
	}
}

func (m multiConsole) Info(message string) {
	for _, c := range m {
		c.Info(message)
	}
}

func (m multiConsole) Debug(message string) {
	for _, c := range m {
		c.Debug(message)
	}
}

func (m multiConsole) Warn(message string) {
	for _, c := range m {
		c.Warn(message)
	}
}

func (m multiConsole) Error(message string) {
	for _, c := range m {
		c.Error(message)
	}
}

func (m multiConsole) Clear() {
	for _, c := range m {
		c.Clear()
	}
}
