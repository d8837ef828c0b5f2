package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/bnema/favbuddy/internal/application/port"
	"github.com/bnema/favbuddy/internal/domain/bookmark"
	"github.com/bnema/favbuddy/internal/domain/entity"
	"github.com/bnema/favbuddy/internal/domain/url"
	"github.com/bnema/favbuddy/internal/logging"
)

const (
	// DefaultCheckpointInterval is the number of processed links between cache flushes.
	DefaultCheckpointInterval = 50
	// progressLogEvery emits a progress transcript line every N processed links.
	progressLogEvery = 10

	transcriptSeparator  = "----------------------------------------"
	transcriptTimeLayout = "2006-01-02 15:04:05"
)

var (
	// ErrInputRead is returned when the bookmarks document cannot be read.
	ErrInputRead = errors.New("failed to read bookmarks file")
	// ErrOutputWrite is returned when the enriched document cannot be written.
	ErrOutputWrite = errors.New("failed to write output file")
)

// EnrichBookmarksUseCase attaches cached or fetched icons to every link of a
// bookmark document.
//
// Only one run may use a given cache file at a time; callers enforce this.
type EnrichBookmarksUseCase struct {
	cacheStore      port.IconCacheStore
	fetcher         port.IconFetcher
	files           port.FileSystem
	translator      port.Translator
	metrics         port.EnrichMetrics
	runs            port.RunHistoryRepository
	cachePath       string
	checkpointEvery int
	now             func() time.Time
}

// EnrichOption configures an EnrichBookmarksUseCase.
type EnrichOption func(*EnrichBookmarksUseCase)

// WithMetrics reports lookups, fetches and flushes to m.
func WithMetrics(m port.EnrichMetrics) EnrichOption {
	return func(uc *EnrichBookmarksUseCase) {
		if m != nil {
			uc.metrics = m
		}
	}
}

// WithRunHistory records every finished run in repo.
func WithRunHistory(repo port.RunHistoryRepository) EnrichOption {
	return func(uc *EnrichBookmarksUseCase) {
		uc.runs = repo
	}
}

// WithCheckpointInterval sets how many processed links trigger a cache flush.
func WithCheckpointInterval(n int) EnrichOption {
	return func(uc *EnrichBookmarksUseCase) {
		if n > 0 {
			uc.checkpointEvery = n
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) EnrichOption {
	return func(uc *EnrichBookmarksUseCase) {
		uc.now = now
	}
}

// NewEnrichBookmarksUseCase creates the enrichment pipeline for the cache at cachePath.
func NewEnrichBookmarksUseCase(
	cacheStore port.IconCacheStore,
	fetcher port.IconFetcher,
	files port.FileSystem,
	translator port.Translator,
	cachePath string,
	opts ...EnrichOption,
) *EnrichBookmarksUseCase {
	uc := &EnrichBookmarksUseCase{
		cacheStore:      cacheStore,
		fetcher:         fetcher,
		files:           files,
		translator:      translator,
		metrics:         noopMetrics{},
		cachePath:       cachePath,
		checkpointEvery: DefaultCheckpointInterval,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// EnrichInput contains parameters for an enrichment run.
type EnrichInput struct {
	InputPath string
	// OutputPath defaults to a timestamped sibling of InputPath.
	OutputPath string
}

// Run processes the document at input.InputPath.
//
// Cancellation of ctx is checked once per link; an in-flight fetch always
// completes. A cancelled run flushes the cache, writes no output and returns
// an Aborted session with a nil error.
//
// Progress and transcript lines are sent on events, which may be nil. Sends
// block, so the caller must drain events until Run returns. Run never closes
// the channel. The returned session is never nil.
func (uc *EnrichBookmarksUseCase) Run(ctx context.Context, input EnrichInput, events chan<- entity.Event) (*entity.EnrichSession, error) {
	outputPath := input.OutputPath
	if outputPath == "" {
		outputPath = url.OutputFilename(input.InputPath, uc.now())
	}

	session := entity.NewEnrichSession(input.InputPath, outputPath, uc.now())
	ctx = logging.WithRunID(ctx, session.ID)
	log := logging.FromContext(ctx)

	r := &enrichRun{uc: uc, session: session, events: events}
	defer uc.record(ctx, session)

	log.Info().Str("input", input.InputPath).Str("output", outputPath).Msg("enrichment started")

	cache := uc.cacheStore.Load(ctx, uc.cachePath)

	r.line(transcriptSeparator)
	r.line(fmt.Sprintf("[%s] %s", session.StartedAt.Format(transcriptTimeLayout), uc.tr("run.starting_to_process", nil)))

	doc, err := uc.files.ReadFile(ctx, input.InputPath)
	if err != nil {
		r.line(uc.tr("run.read_failed", map[string]string{"error": err.Error()}))
		r.fail(err)
		log.Error().Err(err).Str("input", input.InputPath).Msg("failed to read bookmarks file")
		return session, fmt.Errorf("%w: %w", ErrInputRead, err)
	}
	r.line(uc.tr("run.read_bookmarks_file", map[string]string{"bytes": strconv.Itoa(len(doc))}))

	matches := slices.Collect(bookmark.Anchors(doc))
	session.Total = len(matches)
	r.send(session.Progress())
	r.line(uc.tr("run.found_bookmarks", map[string]string{"count": strconv.Itoa(session.Total)}))

	splicer := bookmark.NewSplicer(doc)
	// Fetches outlive cancellation so the result of an in-flight request is cached.
	fetchCtx := context.WithoutCancel(ctx)
	lastCheckpoint := 0

	for i, m := range matches {
		if ctx.Err() != nil {
			r.line(uc.tr("run.processing_aborted_by_user", nil))
			r.flush(ctx, cache)
			session.Finish(entity.RunAborted, uc.now())
			log.Info().Int("processed", session.Processed).Int("total", session.Total).Msg("enrichment aborted")
			return session, nil
		}

		host, ok := url.ExtractHost(m.Href)
		if !ok {
			uc.metrics.ObserveLink(port.LinkUnresolved)
			log.Trace().Str("href", m.Href).Msg("skipping link without host")
			continue
		}

		if payload, ok := r.resolve(fetchCtx, cache, host); ok {
			if err := splicer.Insert(m.Insert, bookmark.IconAttribute(payload)); err != nil {
				log.Error().Err(err).Str("host", host).Msg("failed to splice icon attribute")
			}
		}

		session.Processed++
		r.send(session.Progress())

		if session.Processed%progressLogEvery == 0 || i == len(matches)-1 {
			r.line(fmt.Sprintf("%s: %d/%d (%.1f%%)",
				uc.tr("run.processing", nil), session.Processed, session.Total, session.Progress().Percent()))
		}

		if session.Processed-lastCheckpoint >= uc.checkpointEvery {
			r.flush(ctx, cache)
			lastCheckpoint = session.Processed
		}
	}

	if err := uc.files.WriteFile(ctx, outputPath, splicer.Bytes()); err != nil {
		r.line(uc.tr("run.output_write_failed", map[string]string{"error": err.Error()}))
		r.flush(ctx, cache)
		r.fail(err)
		log.Error().Err(err).Str("output", outputPath).Msg("failed to write output file")
		return session, fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}

	r.flush(ctx, cache)
	session.Finish(entity.RunCompleted, uc.now())

	r.line("")
	r.line(uc.tr("run.processing_completed_summary", map[string]string{
		"success": strconv.Itoa(session.Succeeded),
		"failed":  strconv.Itoa(session.Failed),
		"total":   strconv.Itoa(session.Total),
	}))
	r.line(uc.tr("run.saved_to_path", map[string]string{"path": outputPath}))

	log.Info().
		Int("succeeded", session.Succeeded).
		Int("failed", session.Failed).
		Int("total", session.Total).
		Dur("duration", session.Duration()).
		Msg("enrichment completed")
	return session, nil
}

func (uc *EnrichBookmarksUseCase) tr(key string, args map[string]string) string {
	return uc.translator.Translate(key, args)
}

// record stores the finished session; failures only degrade history.
func (uc *EnrichBookmarksUseCase) record(ctx context.Context, session *entity.EnrichSession) {
	if uc.runs == nil {
		return
	}
	if err := uc.runs.Save(context.WithoutCancel(ctx), session); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to record run history")
	}
}

// enrichRun is the mutable state of one Run call.
type enrichRun struct {
	uc      *EnrichBookmarksUseCase
	session *entity.EnrichSession
	events  chan<- entity.Event
}

func (r *enrichRun) send(ev entity.Event) {
	if r.events != nil {
		r.events <- ev
	}
}

func (r *enrichRun) line(text string) {
	r.session.Transcript = append(r.session.Transcript, text)
	r.send(entity.LogLine{Text: text})
}

func (r *enrichRun) fail(err error) {
	r.session.Error = err.Error()
	r.session.Finish(entity.RunFailed, r.uc.now())
}

// resolve returns the payload for host from the cache or the provider.
// Every provider error becomes a permanent negative entry.
func (r *enrichRun) resolve(ctx context.Context, cache *entity.IconCache, host string) (string, bool) {
	uc := r.uc
	prefix := fmt.Sprintf("[%3d/%d] %s %s... ", r.session.Processed+1, r.session.Total, uc.tr("run.fetching", nil), host)

	switch entry := cache.Lookup(host); entry.Status {
	case entity.IconResolved:
		uc.metrics.ObserveLookup(port.LookupHit)
		r.succeed(prefix)
		return entry.Payload, true
	case entity.IconFailed:
		uc.metrics.ObserveLookup(port.LookupNegative)
		r.failLink(prefix, uc.tr("run.last_request_failed", nil))
		return "", false
	}

	uc.metrics.ObserveLookup(port.LookupMiss)
	started := time.Now()
	payload, err := uc.fetcher.Fetch(ctx, host)
	uc.metrics.ObserveFetch(err == nil, time.Since(started))

	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("host", host).Msg("icon fetch failed, caching negative result")
		cache.Put(host, entity.FailedIcon())
		r.failLink(prefix, err.Error())
		return "", false
	}

	cache.Put(host, entity.ResolvedIcon(payload))
	r.succeed(prefix)
	return payload, true
}

func (r *enrichRun) succeed(prefix string) {
	r.session.Succeeded++
	r.uc.metrics.ObserveLink(port.LinkSucceeded)
	r.line(prefix + r.uc.tr("run.success", nil))
}

func (r *enrichRun) failLink(prefix, reason string) {
	r.session.Failed++
	r.uc.metrics.ObserveLink(port.LinkFailed)
	r.line(prefix + r.uc.tr("run.failed", nil) + ": " + reason)
}

// flush persists the cache. A failure is reported but never ends the run.
func (r *enrichRun) flush(ctx context.Context, cache *entity.IconCache) {
	err := r.uc.cacheStore.Flush(context.WithoutCancel(ctx), r.uc.cachePath, cache)
	r.uc.metrics.ObserveFlush(err == nil)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("path", r.uc.cachePath).Msg("failed to write favicon cache")
		r.line(r.uc.tr("run.cache_write_failed", map[string]string{"error": err.Error()}))
	}
}

type noopMetrics struct{}

func (noopMetrics) ObserveLookup(string)             {}
func (noopMetrics) ObserveFetch(bool, time.Duration) {}
func (noopMetrics) ObserveLink(string)               {}
func (noopMetrics) ObserveFlush(bool)                {}
