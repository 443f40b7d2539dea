package jsx

import (
	"bytes"
	"encoding/gob"
	"sync"

	"github.com/zeebo/xxh3"
)

// rendered memoizes fragment output keyed by (fragment hash ^ config hash).
var rendered sync.Map

// cacheable reports whether rendering under c depends only on the fragment
// text and the fingerprinted fields.
func (c Config) cacheable() bool {
	return c.cache && c.hooks.empty()
}

// fingerprint hashes the configuration fields that affect rendered output.
func (c Config) fingerprint() uint64 {
	var buf bytes.Buffer

	enc := gob.NewEncoder(&buf)

	_ = enc.Encode(c.labels)
	_ = enc.Encode(c.strategy)
	_ = enc.Encode(c.strict)

	return xxh3.Hash(buf.Bytes())
}

func cacheKey(fragment string, fingerprint uint64) uint64 {
	return xxh3.HashString(fragment) ^ fingerprint
}

func loadRendered(key uint64) (string, bool) {
	v, ok := rendered.Load(key)
	if !ok {
		return "", false
	}

	s, ok := v.(string)

	return s, ok
}

func storeRendered(key uint64, out string) {
	rendered.Store(key, out)
}

// ClearCache removes all memoized fragment output.
func ClearCache() {
	rendered.Clear()
}
