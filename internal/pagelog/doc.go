// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package pagelog implements a small logging facade for page scripts.
// A Logger routes text messages to an on-page text region, to the host console,
// or to both, depending on two independent flags, and tags each message with a severity.
// The page document and the console are collaborators supplied by the caller.
package pagelog
