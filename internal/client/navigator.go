package client

import (
	"context"
	"fmt"
	"io"
)

// consoleNavigator "navigates" by printing the command the user runs next.
type consoleNavigator struct {
	out     io.Writer
	program string
}

func NewConsoleNavigator(out io.Writer, program string) Navigator {
	return &consoleNavigator{out: out, program: program}
}

func (n *consoleNavigator) ToLogin(ctx context.Context) error {
	_, err := fmt.Fprintf(n.out, "Log in with: %s login -email <email> -password <password>\n", n.program)
	return err
}
