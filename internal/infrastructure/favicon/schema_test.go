package favicon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/favbuddy/internal/domain/entity"
	"github.com/bnema/favbuddy/internal/infrastructure/favicon"
)

func resolvedOnly(entries map[string]entity.IconEntry) map[string]string {
	out := map[string]string{}
	for host, e := range entries {
		if e.Status == entity.IconResolved {
			out[host] = e.Payload
		}
	}
	return out
}

func TestDecodeCacheDocument_Schemas(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		schema favicon.Schema
		want   map[string]string
	}{
		{
			name:   "exported document",
			input:  `{"favicon_urls":{"example.com":"icon-payload"}}`,
			schema: favicon.SchemaExported,
			want:   map[string]string{"example.com": "icon-payload"},
		},
		{
			name:   "flat map",
			input:  `{"example.com":"icon-payload"}`,
			schema: favicon.SchemaNative,
			want:   map[string]string{"example.com": "icon-payload"},
		},
		{
			name:   "null only",
			input:  `{"example.com":null}`,
			schema: favicon.SchemaNative,
			want:   map[string]string{},
		},
		{
			name:   "object entry with url field",
			input:  `{"example.com":{"url":"icon-payload"}}`,
			schema: favicon.SchemaGeneric,
			want:   map[string]string{"example.com": "icon-payload"},
		},
		{
			name:   "object entry probes fields in order",
			input:  `{"example.com":{"data":"d","icon":"i"}}`,
			schema: favicon.SchemaGeneric,
			want:   map[string]string{"example.com": "i"},
		},
		{
			name:   "nested favicon_urls next to other keys",
			input:  `{"version":2,"favicon_urls":{"example.com":"icon-payload"}}`,
			schema: favicon.SchemaGeneric,
			want:   map[string]string{"example.com": "icon-payload"},
		},
		{
			name:   "mixed values keep strings",
			input:  `{"a.example":"x","b.example":3,"c.example":null}`,
			schema: favicon.SchemaGeneric,
			want:   map[string]string{"a.example": "x"},
		},
		{
			name:   "empty object",
			input:  `{}`,
			schema: favicon.SchemaNative,
			want:   map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, entries, err := favicon.DecodeCacheDocument([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.schema, schema)
			assert.Equal(t, tt.want, resolvedOnly(entries))
		})
	}
}

func TestDecodeCacheDocument_NullBecomesNegative(t *testing.T) {
	_, entries, err := favicon.DecodeCacheDocument([]byte(`{"a.example":"x","b.example":null}`))
	require.NoError(t, err)
	assert.Equal(t, entity.IconResolved, entries["a.example"].Status)
	assert.Equal(t, entity.IconFailed, entries["b.example"].Status)
}

func TestDecodeCacheDocument_Invalid(t *testing.T) {
	for _, input := range []string{``, `not json`, `[1,2,3]`, `"string"`, `null`, `42`} {
		t.Run(input, func(t *testing.T) {
			_, _, err := favicon.DecodeCacheDocument([]byte(input))
			require.Error(t, err)
			assert.ErrorIs(t, err, favicon.ErrInvalidCacheFile)
		})
	}
}
