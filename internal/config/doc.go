// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package config loads the pagelog facade configuration from the environment
// and from an optional YAML file overriding it.
package config
