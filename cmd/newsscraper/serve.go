package main

import (
	"fmt"
	"net"
	"strconv"
)

// Run executes the serve command. It blocks until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	deps.Server.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	if err := deps.Server.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "App running on port %d!\n", deps.Server.Port())

	<-deps.Ctx.Done()

	return deps.Server.Close()
}
