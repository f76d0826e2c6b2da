// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the console client runtime.
//
// It reads line commands, drives the client services for accounts, saves and
// the leaderboard, and runs the background progression sync for the logged-in
// account until the session ends.
package client
