package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/markify"
	"github.com/fwojciec/markify/yaml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	HTTPClient *http.Client
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log every fetch, conversion and saved image"`

	Convert ConvertCmd `cmd:"" help:"Convert HTML files or URLs to Markdown"`
	Links   LinksCmd   `cmd:"" help:"List link and image destinations of a converted page"`
}

// OptionFlags are the conversion options shared by all commands.
// Flags override values from the config file, which override defaults.
type OptionFlags struct {
	Config             string        `type:"path" help:"YAML file with conversion options"`
	KeepDataURIs       bool          `name:"keep-data-uris" help:"Keep data URI images verbatim"`
	ImageDir           string        `type:"path" help:"Directory for images decoded from data URIs"`
	Autolinks          bool          `help:"Write links whose text equals their URL as <url>"`
	NoAutolinks        bool          `help:"Always write links in [text](url) form"`
	DefaultTitle       bool          `help:"Use the link URL as title when none is given"`
	KeepInlineImagesIn []string      `name:"keep-inline-images-in" help:"Parent tags whose inline images are kept (repeatable)"`
	Extract            string        `enum:"none,body,readability,trafilatura" default:"body" help:"Content selection before conversion (none, body, readability, trafilatura)"`
	Timeout            time.Duration `short:"t" default:"30s" help:"Fetch timeout per URL"`
	Browser            bool          `help:"Render URLs in headless Chrome before converting"`
}

// Options resolves the conversion options from defaults, the config file and
// the flags, in increasing precedence.
func (f *OptionFlags) Options() (markify.Options, error) {
	if f.Autolinks && f.NoAutolinks {
		return markify.Options{}, markify.Errorf(markify.EINVALID, "--autolinks and --no-autolinks are mutually exclusive")
	}

	opts := markify.DefaultOptions()
	if f.Config != "" {
		var err error
		if opts, err = yaml.LoadOptions(f.Config, opts); err != nil {
			return markify.Options{}, err
		}
	}

	if f.KeepDataURIs {
		opts.KeepDataURIs = true
	}
	if f.ImageDir != "" {
		opts.ImageOutputDir = f.ImageDir
	}
	if f.Autolinks {
		opts.Autolinks = true
	}
	if f.NoAutolinks {
		opts.Autolinks = false
	}
	if f.DefaultTitle {
		opts.DefaultTitle = true
	}
	if len(f.KeepInlineImagesIn) > 0 {
		opts.KeepInlineImagesIn = f.KeepInlineImagesIn
	}

	if err := opts.Validate(); err != nil {
		return markify.Options{}, err
	}
	return opts, nil
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	OptionFlags `embed:""`

	Inputs      []string `arg:"" optional:"" help:"HTML files, http(s) URLs, or - for standard input"`
	Output      string   `short:"o" type:"path" help:"Directory for the converted files (required for more than one input)"`
	DB          string   `name:"db" type:"path" help:"Also store converted documents in this SQLite database"`
	Frontmatter bool     `help:"Prefix each document with YAML frontmatter"`
	Sitemap     string   `help:"Also convert every page listed by this sitemap or site"`
	Include     []string `help:"Only convert sitemap URLs matching this regex (repeatable)"`
	Exclude     []string `help:"Skip sitemap URLs matching this regex (repeatable)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent conversions"`
	Rate        float64  `default:"2" help:"Maximum requests per second per host (0 disables)"`
}

// LinksCmd is the "links" subcommand.
type LinksCmd struct {
	OptionFlags `embed:""`

	Input string `arg:"" help:"HTML file, http(s) URL, or - for standard input"`
}

// fail reports err on stderr and returns it. Application errors print their
// message; other errors print in full.
func fail(deps *Dependencies, err error) error {
	msg := err.Error()
	if markify.ErrorCode(err) != markify.EINTERNAL {
		msg = markify.ErrorMessage(err)
	}
	fmt.Fprintf(deps.Stderr, "error: %s\n", msg)
	return err
}
