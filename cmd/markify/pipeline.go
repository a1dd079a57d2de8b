package main

import (
	"fmt"

	"github.com/fwojciec/markify"
	"github.com/fwojciec/markify/convert"
	"github.com/fwojciec/markify/fs"
	"github.com/fwojciec/markify/goquery"
	"github.com/fwojciec/markify/htmltomarkdown"
	markifyhttp "github.com/fwojciec/markify/http"
	"github.com/fwojciec/markify/readability"
	"github.com/fwojciec/markify/rod"
	mslog "github.com/fwojciec/markify/slog"
	"github.com/fwojciec/markify/trafilatura"
)

// newService wires a conversion service for the given options.
func newService(deps *Dependencies, flags *OptionFlags, opts markify.Options) (*convert.Service, error) {
	extractor, err := newExtractor(markify.ExtractMode(flags.Extract))
	if err != nil {
		return nil, err
	}

	images := mslog.NewLoggingImageSaver(fs.NewImageStore(), deps.Logger)
	conv := htmltomarkdown.NewConverter(
		htmltomarkdown.WithOptions(opts),
		htmltomarkdown.WithImageSaver(images),
	)

	var remote markify.Fetcher = markifyhttp.NewFetcher(markifyhttp.WithTimeout(flags.Timeout))
	if flags.Browser {
		browser, err := rod.NewFetcher(rod.WithTimeout(flags.Timeout))
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		remote = browser
	}

	fetcher := &convert.SourceFetcher{
		Remote: mslog.NewLoggingFetcher(remote, deps.Logger),
		Local:  mslog.NewLoggingFetcher(fs.NewFetcher(fs.WithStdin(deps.Stdin)), deps.Logger),
	}

	return &convert.Service{
		Fetcher:   fetcher,
		Extractor: extractor,
		Converter: mslog.NewLoggingConverter(conv, deps.Logger),
		Logger:    deps.Logger,
	}, nil
}

func newExtractor(mode markify.ExtractMode) (markify.Extractor, error) {
	switch mode {
	case markify.ExtractNone:
		return passthrough{}, nil
	case markify.ExtractBody, "":
		return goquery.NewBodyExtractor(), nil
	case markify.ExtractReadability:
		return readability.NewExtractor(), nil
	case markify.ExtractTrafilatura:
		return trafilatura.NewExtractor(), nil
	}
	return nil, markify.Errorf(markify.EINVALID, "unknown extract mode %q", mode)
}

// passthrough hands the whole document to the converter.
type passthrough struct{}

func (passthrough) Extract(html string) (*markify.ExtractResult, error) {
	return &markify.ExtractResult{ContentHTML: html}, nil
}
