package entity

import (
	"maps"
	"slices"
)

// IconStatus is the state of a host in the icon cache.
type IconStatus uint8

const (
	// IconUnresolved means the host has never been looked up.
	IconUnresolved IconStatus = iota
	// IconResolved means an icon payload was fetched for the host.
	IconResolved
	// IconFailed is a permanent negative result. It is never retried
	// for the lifetime of the cache file.
	IconFailed
)

// String returns a short label for the status.
func (s IconStatus) String() string {
	switch s {
	case IconResolved:
		return "resolved"
	case IconFailed:
		return "failed"
	default:
		return "unresolved"
	}
}

// IconEntry is the cached result for one host.
type IconEntry struct {
	Status  IconStatus
	Payload string // Embeddable icon, e.g. a base64 data URI. Empty unless Resolved.
}

// ResolvedIcon returns an entry holding a fetched payload.
func ResolvedIcon(payload string) IconEntry {
	return IconEntry{Status: IconResolved, Payload: payload}
}

// FailedIcon returns a permanent negative entry.
func FailedIcon() IconEntry {
	return IconEntry{Status: IconFailed}
}

// IconCache maps normalized hosts to cached icon results.
// It is owned by a single run and is not safe for concurrent use.
type IconCache struct {
	entries map[string]IconEntry
}

// NewIconCache creates an empty cache.
func NewIconCache() *IconCache {
	return &IconCache{entries: make(map[string]IconEntry)}
}

// NewIconCacheFrom creates a cache seeded with entries. Unresolved entries are dropped.
func NewIconCacheFrom(entries map[string]IconEntry) *IconCache {
	c := NewIconCache()
	for host, e := range entries {
		c.Put(host, e)
	}
	return c
}

// Lookup returns the entry for host, or an Unresolved entry when absent.
func (c *IconCache) Lookup(host string) IconEntry {
	if e, ok := c.entries[host]; ok {
		return e
	}
	return IconEntry{}
}

// Put stores an entry for host, overwriting any previous one.
// Storing an Unresolved entry removes the host.
func (c *IconCache) Put(host string, e IconEntry) {
	if host == "" {
		return
	}
	if e.Status == IconUnresolved {
		delete(c.entries, host)
		return
	}
	c.entries[host] = e
}

// Remove deletes host from the cache and reports whether it was present.
func (c *IconCache) Remove(host string) bool {
	_, ok := c.entries[host]
	delete(c.entries, host)
	return ok
}

// Len returns the number of cached hosts.
func (c *IconCache) Len() int {
	return len(c.entries)
}

// Hosts returns the cached hosts in sorted order.
func (c *IconCache) Hosts() []string {
	return slices.Sorted(maps.Keys(c.entries))
}

// Entries returns a copy of all entries.
func (c *IconCache) Entries() map[string]IconEntry {
	return maps.Clone(c.entries)
}

// Resolved returns host -> payload for every Resolved entry.
func (c *IconCache) Resolved() map[string]string {
	out := make(map[string]string, len(c.entries))
	for host, e := range c.entries {
		if e.Status == IconResolved {
			out[host] = e.Payload
		}
	}
	return out
}

// Counts returns the number of resolved and failed entries.
func (c *IconCache) Counts() (resolved, failed int) {
	for _, e := range c.entries {
		switch e.Status {
		case IconResolved:
			resolved++
		case IconFailed:
			failed++
		}
	}
	return resolved, failed
}

// ExportedIconCache is the portable cache document.
// It never carries negative entries.
type ExportedIconCache struct {
	FaviconURLs map[string]string `json:"favicon_urls" jsonschema:"description=Map of host to embeddable icon payload"`
}

// ImportedIconCache is the outcome of reading a candidate cache file.
type ImportedIconCache struct {
	Schema  string            // name of the schema that matched
	Entries map[string]string // host -> payload, negative entries filtered out
}
