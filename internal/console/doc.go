// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package console implements the host console sinks used by the pagelog facade.
// Messages can be printed to an io.Writer, forwarded to the application logger,
// or fanned out to several consoles at once.
package console
