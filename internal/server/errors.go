// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"errors"
	"fmt"
)

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errNoServersToRun      = errors.New("no servers to run")
)

// listenError names the transport whose address could not be bound.
func listenError(name, address string, err error) error {
	return fmt.Errorf("%s listen on %s: %w", name, address, err)
}
