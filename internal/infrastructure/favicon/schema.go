package favicon

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/favbuddy/internal/domain/entity"
)

// Schema names the cache file layout that a document matched.
type Schema string

const (
	// SchemaExported is {"favicon_urls": {host: payload}}.
	SchemaExported Schema = "exported"
	// SchemaNative is {host: payload | null}, the live cache layout.
	// A flat {host: payload-or-null} map decodes the same way.
	SchemaNative Schema = "native"
	// SchemaFlat is {host: payload}.
	SchemaFlat Schema = "flat"
	// SchemaGeneric is any JSON object, probed field by field.
	SchemaGeneric Schema = "generic"
)

// exportedKey is the top-level key of the exported document.
const exportedKey = "favicon_urls"

// ErrInvalidCacheFile is returned when no schema in the cascade matches.
var ErrInvalidCacheFile = errors.New("invalid icon cache file")

// payloadFields are probed in order on object-valued generic entries.
var payloadFields = []string{"url", "favicon", "icon", "data"}

type schemaDecoder struct {
	schema Schema
	decode func([]byte) (map[string]entity.IconEntry, error)
}

// cascade is tried in order; the first decoder that succeeds wins.
var cascade = []schemaDecoder{
	{SchemaExported, decodeExported},
	{SchemaNative, decodeNative},
	{SchemaFlat, decodeFlat},
	{SchemaGeneric, decodeGeneric},
}

// DecodeCacheDocument parses a cache file in any supported layout.
// Null values become negative entries; callers importing a file drop them.
func DecodeCacheDocument(data []byte) (Schema, map[string]entity.IconEntry, error) {
	var errs []error
	for _, d := range cascade {
		entries, err := d.decode(data)
		if err == nil {
			return d.schema, entries, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", d.schema, err))
	}
	return "", nil, fmt.Errorf("%w: %w", ErrInvalidCacheFile, errors.Join(errs...))
}

func decodeExported(data []byte) (map[string]entity.IconEntry, error) {
	var doc struct {
		FaviconURLs map[string]string `json:"favicon_urls"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if doc.FaviconURLs == nil {
		return nil, fmt.Errorf("missing %q object", exportedKey)
	}

	entries := make(map[string]entity.IconEntry, len(doc.FaviconURLs))
	for host, payload := range doc.FaviconURLs {
		if payload != "" {
			entries[host] = entity.ResolvedIcon(payload)
		}
	}
	return entries, nil
}

func decodeNative(data []byte) (map[string]entity.IconEntry, error) {
	var raw map[string]*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("not a JSON object")
	}

	entries := make(map[string]entity.IconEntry, len(raw))
	for host, payload := range raw {
		if payload == nil {
			entries[host] = entity.FailedIcon()
			continue
		}
		entries[host] = entity.ResolvedIcon(*payload)
	}
	return entries, nil
}

func decodeFlat(data []byte) (map[string]entity.IconEntry, error) {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("not a JSON object")
	}

	entries := make(map[string]entity.IconEntry, len(raw))
	for host, payload := range raw {
		entries[host] = entity.ResolvedIcon(payload)
	}
	return entries, nil
}

func decodeGeneric(data []byte) (map[string]entity.IconEntry, error) {
	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, errors.New("not a JSON object")
	}

	source := root
	if nested, ok := root[exportedKey].(map[string]any); ok {
		source = nested
	}

	entries := make(map[string]entity.IconEntry, len(source))
	for host, v := range source {
		switch val := v.(type) {
		case string:
			entries[host] = entity.ResolvedIcon(val)
		case nil:
			entries[host] = entity.FailedIcon()
		case map[string]any:
			if payload, ok := probePayload(val); ok {
				entries[host] = entity.ResolvedIcon(payload)
			}
		}
	}
	return entries, nil
}

func probePayload(obj map[string]any) (string, bool) {
	for _, field := range payloadFields {
		if s, ok := obj[field].(string); ok {
			return s, true
		}
	}
	return "", false
}
