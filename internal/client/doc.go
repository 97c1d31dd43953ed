// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI and the client services into a single process
// lifecycle: restore the persisted session, pick the starting screen, run the
// UI until the user quits.
package client
