// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line ledger client.
//
// Each invocation runs one subcommand (register, login, summary, add,
// logout, version) against the server API. The signed-in session is cached
// locally between invocations.
package client
