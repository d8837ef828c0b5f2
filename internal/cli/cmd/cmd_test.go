package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/favbuddy/internal/application/port/mocks"
	"github.com/bnema/favbuddy/internal/application/usecase"
	"github.com/bnema/favbuddy/internal/cli"
	"github.com/bnema/favbuddy/internal/infrastructure/favicon"
	"github.com/bnema/favbuddy/internal/infrastructure/filesystem"
	"github.com/bnema/favbuddy/internal/infrastructure/i18n"
	"github.com/bnema/favbuddy/internal/logging"
)

func TestConfigSchemaCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "schema"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	var schema map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &schema))
	assert.Contains(t, schema, "properties")
}

func TestEnrichWithTranscript(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/in.html",
		[]byte(`<DL><DT><A HREF="https://a.example/">a</A><DT><A HREF="https://b.example/">b</A></DL>`), 0o644))

	catalog, err := i18n.NewCatalog("en")
	require.NoError(t, err)

	fetcher := mocks.NewMockIconFetcher(t)
	fetcher.EXPECT().Fetch(mock.Anything, "a.example").Return("data:image/png;base64,QQ==", nil).Once()
	fetcher.EXPECT().Fetch(mock.Anything, "b.example").Return("", errors.New("HTTP 404")).Once()

	app := &cli.App{
		EnrichUC: usecase.NewEnrichBookmarksUseCase(
			favicon.NewFileStore(mem), fetcher, filesystem.NewWithFs(mem), catalog, "/cache.json",
		),
	}
	ctx := logging.WithContext(context.Background(), logging.NewFromConfigValues("disabled", "console"))

	var out bytes.Buffer
	err = enrichWithTranscript(ctx, app, usecase.EnrichInput{InputPath: "/in.html", OutputPath: "/out.html"}, &out)
	require.NoError(t, err)

	transcript := out.String()
	assert.Contains(t, transcript, "a.example")
	assert.Contains(t, transcript, "HTTP 404")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(transcript), "/out.html"), transcript)

	enriched, err := afero.ReadFile(mem, "/out.html")
	require.NoError(t, err)
	assert.Contains(t, string(enriched), `icon="data:image/png;base64,QQ=="`)
}

func TestEnrichWithTranscript_InputMissing(t *testing.T) {
	mem := afero.NewMemMapFs()
	catalog, err := i18n.NewCatalog("en")
	require.NoError(t, err)

	app := &cli.App{
		EnrichUC: usecase.NewEnrichBookmarksUseCase(
			favicon.NewFileStore(mem), mocks.NewMockIconFetcher(t), filesystem.NewWithFs(mem), catalog, "/cache.json",
		),
	}

	var out bytes.Buffer
	err = enrichWithTranscript(context.Background(), app, usecase.EnrichInput{InputPath: "/missing.html"}, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrInputRead)
	assert.NotEmpty(t, out.String(), "the failure is part of the transcript")
}
