package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/markify"
	"github.com/fwojciec/markify/convert"
	"github.com/fwojciec/markify/fs"
	markifyhttp "github.com/fwojciec/markify/http"
	mslog "github.com/fwojciec/markify/slog"
	"github.com/fwojciec/markify/sqlite"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	opts, err := c.Options()
	if err != nil {
		return fail(deps, err)
	}

	sources, err := c.sources(deps)
	if err != nil {
		return fail(deps, err)
	}
	if len(sources) == 0 {
		return fail(deps, markify.Errorf(markify.EINVALID, "no inputs given"))
	}
	if c.Output == "" && c.DB == "" && len(sources) > 1 {
		return fail(deps, markify.Errorf(markify.EINVALID, "%d inputs require --output or --db", len(sources)))
	}
	if c.Output != "" {
		if err := fs.CheckPaths(sources); err != nil {
			return fail(deps, err)
		}
	}

	svc, err := newService(deps, &c.OptionFlags, opts)
	if err != nil {
		return fail(deps, err)
	}
	defer svc.Fetcher.Close()

	svc.Concurrency = c.Concurrency
	svc.RateLimiter = convert.NewDomainLimiter(c.Rate)

	var writers convert.Writers
	if c.Output != "" {
		writers = append(writers, fs.NewWriter(c.Output, fs.WithFrontmatter(c.Frontmatter)))
	}
	if c.DB != "" {
		db := sqlite.NewDB(c.DB)
		if err := db.Open(); err != nil {
			return fail(deps, fmt.Errorf("failed to open database at %q: %w", c.DB, err))
		}
		defer db.Close()
		writers = append(writers, sqlite.NewDocumentStore(db))
	}
	if len(writers) > 0 {
		svc.Writer = writers
	}

	progress := func(event convert.ProgressEvent) {
		if event.Type == convert.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Source, event.Error)
		}
	}

	result, err := svc.ConvertAll(deps.Ctx, sources, progress)
	if err != nil {
		return fail(deps, err)
	}

	if c.Output == "" && len(sources) == 1 {
		if doc := result.Items[0].Document; doc != nil {
			if err := c.print(deps.Stdout, doc); err != nil {
				return fail(deps, err)
			}
		}
	} else {
		fmt.Fprintf(deps.Stderr, "Saved %d of %d documents (%s)\n",
			result.Saved, len(sources), convert.FormatBytes(result.Bytes))
	}

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", result.Failed, len(sources))
	}
	return nil
}

// sources returns the inputs followed by the sitemap URLs, without
// duplicates.
func (c *ConvertCmd) sources(deps *Dependencies) ([]string, error) {
	sources := make([]string, 0, len(c.Inputs))
	seen := make(map[string]bool)
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			sources = append(sources, s)
		}
	}
	for _, in := range c.Inputs {
		add(in)
	}

	if c.Sitemap == "" {
		if len(c.Include) > 0 || len(c.Exclude) > 0 {
			return nil, markify.Errorf(markify.EINVALID, "--include and --exclude require --sitemap")
		}
		return sources, nil
	}

	filter, err := markify.NewURLFilter(c.Include, c.Exclude)
	if err != nil {
		return nil, err
	}

	sitemaps := mslog.NewLoggingSitemapService(markifyhttp.NewSitemapService(deps.HTTPClient), deps.Logger)
	urls, err := sitemaps.URLs(deps.Ctx, c.Sitemap, filter)
	if err != nil {
		return nil, fmt.Errorf("sitemap: %w", err)
	}
	for _, u := range urls {
		add(u)
	}
	return sources, nil
}

func (c *ConvertCmd) print(w io.Writer, doc *markify.Document) error {
	content := doc.Content
	if c.Frontmatter {
		var err error
		if content, err = fs.FormatDocument(doc); err != nil {
			return err
		}
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	_, err := io.WriteString(w, content)
	return err
}
