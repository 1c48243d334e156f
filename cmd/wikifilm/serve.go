package main

import (
	"fmt"

	wikihttp "github.com/reeljournal/wikifilm/http"
)

// Run executes the serve command. It blocks until the context is
// cancelled, then shuts the server down gracefully.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := wikihttp.NewServer()
	srv.Addr = c.Addr
	srv.Articles = deps.Articles
	srv.Logger = deps.Logger

	if err := srv.Open(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "listening on %s\n", srv.URL())

	<-deps.Ctx.Done()

	return srv.Close()
}
