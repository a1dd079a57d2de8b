// Package convert runs the fetch, extract, convert and write pipeline over
// a batch of sources.
package convert

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/markify"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of sources processed at once when
// Service.Concurrency is not set.
const DefaultConcurrency = 4

// Service converts sources to Markdown documents.
type Service struct {
	Fetcher   markify.Fetcher
	Extractor markify.Extractor
	Converter markify.Converter

	// Writer receives each converted document. Optional; when nil the
	// documents are only returned in the Result.
	Writer markify.DocumentWriter

	// RateLimiter throttles fetches of remote sources per host. Optional.
	RateLimiter markify.DomainLimiter

	Concurrency int

	// RetryDelays are the waits between fetch attempts of remote sources.
	// Nil means DefaultRetryDelays.
	RetryDelays []time.Duration

	// Logger receives retry notices. Optional.
	Logger *slog.Logger

	// Now returns the conversion timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Result holds the outcome of a batch conversion.
type Result struct {
	// Items has one entry per source, in input order.
	Items []Item

	Saved  int
	Failed int
	Bytes  int
}

// Item is the outcome for a single source. Exactly one of Document and Err
// is set.
type Item struct {
	Source   string
	Document *markify.Document
	Err      error
}

// ProgressEvent reports progress during a batch conversion.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Source    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting conversion progress.
type ProgressFunc func(event ProgressEvent)

type itemResult struct {
	position int
	item     Item
}

// ConvertAll converts every source. A failing source is recorded in its Item
// and does not stop the others. The returned error is non-nil only when ctx
// is canceled. Progress events are delivered from the calling goroutine.
func (s *Service) ConvertAll(ctx context.Context, sources []string, progress ProgressFunc) (*Result, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(sources)
	resultCh := make(chan itemResult, total)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, source := range sources {
			g.Go(func() error {
				resultCh <- itemResult{position: i, item: s.convertSource(gctx, source)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	result := &Result{Items: make([]Item, total)}
	var completed atomic.Int64
	for r := range resultCh {
		completed.Add(1)
		result.Items[r.position] = r.item

		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			Source:    r.item.Source,
		}
		if r.item.Err != nil {
			result.Failed++
			event.Type = ProgressFailed
			event.Error = r.item.Err
		} else {
			result.Saved++
			result.Bytes += len(r.item.Document.Content)
		}
		if progress != nil {
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// convertSource fetches, extracts, converts and writes a single source.
func (s *Service) convertSource(ctx context.Context, source string) Item {
	item := Item{Source: source}

	html, err := s.fetch(ctx, source)
	if err != nil {
		item.Err = fmt.Errorf("fetch %s: %w", source, err)
		return item
	}

	extracted, err := s.Extractor.Extract(html)
	if err != nil {
		item.Err = fmt.Errorf("extract %s: %w", source, err)
		return item
	}

	markdown, err := s.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		item.Err = fmt.Errorf("convert %s: %w", source, err)
		return item
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	doc := &markify.Document{
		Source:      source,
		Title:       extracted.Title,
		Content:     markdown,
		ContentHash: ComputeHash(markdown),
		ConvertedAt: now(),
	}

	if s.Writer != nil {
		if err := s.Writer.WriteDocument(ctx, doc); err != nil {
			item.Err = fmt.Errorf("write %s: %w", source, err)
			return item
		}
	}

	item.Document = doc
	return item
}

// fetch reads a source. Remote sources are rate limited per host and
// retried; local sources are read once.
func (s *Service) fetch(ctx context.Context, source string) (string, error) {
	if !markify.IsRemoteSource(source) {
		return s.Fetcher.Fetch(ctx, source)
	}

	if s.RateLimiter != nil {
		u, err := url.Parse(source)
		if err != nil {
			return "", markify.Errorf(markify.EINVALID, "invalid URL %q", source)
		}
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, source, s.Fetcher.Fetch, s.Logger, delays)
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
