package main

import (
	"fmt"

	"github.com/fwojciec/markify/goldmark"
)

// Run executes the links command.
func (c *LinksCmd) Run(deps *Dependencies) error {
	opts, err := c.Options()
	if err != nil {
		return fail(deps, err)
	}

	svc, err := newService(deps, &c.OptionFlags, opts)
	if err != nil {
		return fail(deps, err)
	}
	defer svc.Fetcher.Close()

	result, err := svc.ConvertAll(deps.Ctx, []string{c.Input}, nil)
	if err != nil {
		return fail(deps, err)
	}
	item := result.Items[0]
	if item.Err != nil {
		return fail(deps, item.Err)
	}

	refs, err := goldmark.NewInspector().Inspect(item.Document.Content)
	if err != nil {
		return fail(deps, err)
	}
	for _, ref := range refs {
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", ref.Kind, ref.Destination)
	}
	return nil
}
