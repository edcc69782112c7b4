// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package script runs JavaScript page scripts against a page document.
// Scripts see a console object, a document exposing getElementById, and the Log facade
// with its LogTypes enum, so that they can drive pagelog the way a page script would.
package script
