// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package logger wraps hclog behind the structured application logger used by pagelog commands.
// Loggers travel through context helpers so that commands, the script host and the
// preview server share the same configured instance.
package logger
