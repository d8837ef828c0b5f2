package usecase_test

import (
	"context"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/bnema/favbuddy/internal/application/port"
	"github.com/bnema/favbuddy/internal/domain/entity"
	"github.com/bnema/favbuddy/internal/infrastructure/favicon"
	"github.com/bnema/favbuddy/internal/infrastructure/filesystem"
	"github.com/bnema/favbuddy/internal/logging"
)

const testCachePath = "/data/favbuddy/favicon_cache.json"

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

var fixedNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// keyTranslator renders "key" or "key{a=1 b=2}" so tests can match lines exactly.
type keyTranslator struct{}

func (keyTranslator) Translate(key string, args map[string]string) string {
	if len(args) == 0 {
		return key
	}
	parts := make([]string, 0, len(args))
	for _, k := range slices.Sorted(maps.Keys(args)) {
		parts = append(parts, k+"="+args[k])
	}
	return key + "{" + strings.Join(parts, " ") + "}"
}

// countingStore wraps a real store and counts or fails flushes.
type countingStore struct {
	port.IconCacheStore
	flushes  int
	flushErr error
}

func (s *countingStore) Flush(ctx context.Context, path string, cache *entity.IconCache) error {
	s.flushes++
	if s.flushErr != nil {
		return s.flushErr
	}
	return s.IconCacheStore.Flush(ctx, path, cache)
}

type testEnv struct {
	fs    afero.Fs
	files *filesystem.Adapter
	store *countingStore
}

func newTestEnv() *testEnv {
	mem := afero.NewMemMapFs()
	return &testEnv{
		fs:    mem,
		files: filesystem.NewWithFs(mem),
		store: &countingStore{IconCacheStore: favicon.NewFileStore(mem)},
	}
}

// seed writes entries to the live cache file.
func (e *testEnv) seed(entries map[string]entity.IconEntry) {
	if err := favicon.NewFileStore(e.fs).Flush(context.Background(), testCachePath, entity.NewIconCacheFrom(entries)); err != nil {
		panic(err)
	}
}

func (e *testEnv) liveCache() *entity.IconCache {
	return favicon.NewFileStore(e.fs).Load(context.Background(), testCachePath)
}

func (e *testEnv) writeFile(path, content string) {
	if err := afero.WriteFile(e.fs, path, []byte(content), 0o644); err != nil {
		panic(err)
	}
}

func (e *testEnv) readFile(path string) (string, bool) {
	data, err := afero.ReadFile(e.fs, path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// bookmarksDoc builds a Netscape bookmark export linking to hrefs.
func bookmarksDoc(hrefs ...string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n<DL><p>\n")
	for _, h := range hrefs {
		b.WriteString(`    <DT><A HREF="` + h + `" ADD_DATE="1700000000">` + h + "</A>\n")
	}
	b.WriteString("</DL><p>\n")
	return b.String()
}

// collect drains events into a slice; close events after Run returns.
func collect(events <-chan entity.Event) (progress []entity.ProgressEvent, lines []string) {
	for ev := range events {
		switch e := ev.(type) {
		case entity.ProgressEvent:
			progress = append(progress, e)
		case entity.LogLine:
			lines = append(lines, e.Text)
		}
	}
	return progress, lines
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
