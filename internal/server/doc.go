// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package server serves a live preview of a pagelog page over HTTP using the Fiber framework.
// Besides the rendered page it exposes the content of single display elements, an endpoint
// to log new messages through the facade, and the usual status routes.
package server
