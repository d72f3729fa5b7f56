// SPDX-License-Identifier: Apache-2.0

// Package server runs the HTTP listener and coordinates graceful shutdown
// on SIGTERM/SIGINT/SIGQUIT.
package server
