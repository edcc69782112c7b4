// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/mia-platform/pagelog/internal/pagelog"
)

// ClearSequence is the ANSI sequence written by a writer console when cleared.
const ClearSequence = "\033[H\033[2J"

var _ pagelog.Console = &writerConsole{}

type writerConsole struct {
	writer io.Writer

	lock sync.Mutex
}

// NewWriterConsole returns a console printing one "channel: message" line per call to w.
func NewWriterConsole(w io.Writer) pagelog.Console {
	return &writerConsole{
		writer: w,
	}
}

func (c *writerConsole) Log(message string) {
	c.write("log", message)
}

func (c *writerConsole) Info(message string) {
	c.write("info", message)
}

func (c *writerConsole) Debug(message string) {
	c.write("debug", message)
}

func (c *writerConsole) Warn(message string) {
	c.write("warn", message)
}

func (c *writerConsole) Error(message string) {
	c.write("error", message)
}

func (c *writerConsole) Clear() {
	c.lock.Lock()
	defer c.lock.Unlock()
	fmt.Fprint(c.writer, ClearSequence)
}

func (c *writerConsole) write(channel, message string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	fmt.Fprintf(c.writer, "%s: %s\n", channel, message)
}
