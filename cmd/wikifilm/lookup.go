package main

import (
	"encoding/json"
	"fmt"

	"github.com/reeljournal/wikifilm"
)

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	req := wikifilm.SearchRequest{
		Title:       c.Title,
		Year:        c.Year,
		MediaType:   wikifilm.MediaType(c.MediaType),
		FullContent: c.Full,
	}

	var result any
	var err error
	if c.Full {
		result, err = deps.Articles.Lookup(deps.Ctx, req)
	} else {
		result, err = deps.Articles.LookupLegacy(deps.Ctx, req)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikifilm.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
