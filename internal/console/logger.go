// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package console

import (
	"github.com/mia-platform/pagelog/internal/logger"
	"github.com/mia-platform/pagelog/internal/pagelog"
)

const (
	loggerName = "pagelog:console"

	// ClearedMessage is traced when a logger console is cleared.
	ClearedMessage = "console cleared"
)

var _ pagelog.Console = &loggerConsole{}

type loggerConsole struct {
	log logger.Logger
}

// NewLoggerConsole returns a console forwarding every channel to the application logger.
// The plain channel is logged at INFO level, and clearing only leaves a TRACE line.
func NewLoggerConsole(log logger.Logger) pagelog.Console {
	return &loggerConsole{
		log: log.WithName(loggerName),
	}
}

func (c *loggerConsole) Log(message string) {
	c.log.Info(message, "channel", "log")
}

func (c *loggerConsole) Info(message string) {
	c.log.Info(message, "channel", "info")
}

func (c *loggerConsole) Debug(message string) {
	c.log.Debug(message, "channel", "debug")
}

func (c *loggerConsole) Warn(message string) {
	c.log.Warn(message, "channel", "warn")
}

func (c *loggerConsole) Error(message string) {
	c.log.Error(message, "channel", "error")
}

func (c *loggerConsole) Clear() {
	c.log.Trace(ClearedMessage)
}
