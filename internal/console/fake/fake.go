// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"sync"
	"testing"

	"github.com/mia-platform/pagelog/internal/pagelog"
)

var _ pagelog.Console = &Console{}

// Call is a single message received by the fake console.
type Call struct {
	Channel string
	Message string
}

// Console records every call it receives.
type Console struct {
	tb testing.TB

	lock   sync.Mutex
	Calls  []Call
	Clears int
}

// NewConsole returns an empty recording console bound to tb.
func NewConsole(tb testing.TB) *Console {
	tb.Helper()
	return &Console{tb: tb}
}

func (c *Console) Log(message string)   { c.record("log", message) }
func (c *Console) Info(message string)  { c.record("info", message) }
func (c *Console) Debug(message string) { c.record("debug", message) }
func (c *Console) Warn(message string)  { c.record("warn", message) }
func (c *Console) Error(message string) { c.record("error", message) }

func (c *Console) Clear() {
	c.tb.Helper()
	c.lock.Lock()
	defer c.lock.Unlock()
	c.Clears++
}

// Messages returns the messages received on channel, in order.
func (c *Console) Messages(channel string) []string {
	c.lock.Lock()
	defer c.lock.Unlock()

	messages := make([]string, 0)
	for _, call := range c.Calls {
		if call.Channel == channel {
			messages = append(messages, call.Message)
		}
	}
	return messages
}

func (c *Console) record(channel, message string) {
	c.tb.Helper()
	c.lock.Lock()
	defer c.lock.Unlock()
	c.Calls = append(c.Calls, Call{Channel: channel, Message: message})
}
