// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package page holds an in-memory page document made of text region elements.
// It is the host environment looked up by the pagelog facade and rendered as HTML by the server.
package page
