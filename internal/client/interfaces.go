// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the subcommand in args and returns when it is done.
	Run(ctx context.Context, args []string) error
}

// Navigator moves the user to another screen of the client.
type Navigator interface {
	// ToLogin sends the user to the login prompt.
	ToLogin(ctx context.Context) error
}
