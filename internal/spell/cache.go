package spell

import (
	"sort"
	"strings"
	"sync"
)

// Checker is the spellcheck capability a scan consults on cache misses.
type Checker interface {
	Check(word string) bool
	Suggest(word string) []string
}

// Cache is the word→suggestions table shared by every scan in a session,
// together with the user's custom words. An empty suggestion list marks a
// word known to be correct. All access goes through one mutex, held for a
// single lookup.
type Cache struct {
	mu      sync.Mutex
	entries map[string][]string
	custom  map[string]struct{}
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[string][]string),
		custom:  make(map[string]struct{}),
	}
}

// Lookup reports whether word is misspelled and the suggestions for it.
// Custom words are always correct. Unknown words are resolved with checker
// and the result is stored.
func (c *Cache) Lookup(word string, checker Checker) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.custom[word]; ok {
		return nil, false
	}
	if suggestions, ok := c.entries[word]; ok {
		return suggestions, len(suggestions) > 0
	}
	if checker.Check(word) {
		c.entries[word] = []string{}
		return nil, false
	}
	suggestions := checker.Suggest(word)
	if suggestions == nil {
		suggestions = []string{}
	}
	c.entries[word] = suggestions
	return suggestions, true
}

// Load merges persisted entries into the cache.
func (c *Cache) Load(entries map[string][]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for w, s := range entries {
		c.entries[w] = s
	}
}

// Snapshot copies the current entries.
func (c *Cache) Snapshot() map[string][]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string][]string, len(c.entries))
	for w, s := range c.entries {
		out[w] = append([]string{}, s...)
	}
	return out
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// AddWords adds custom words, lowercased. Blank entries are ignored.
func (c *Cache) AddWords(words ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			c.custom[w] = struct{}{}
		}
	}
}

// Words returns the custom words in sorted order.
func (c *Cache) Words() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.custom))
	for w := range c.custom {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Speller pairs a checker with the shared cache. A nil Speller, or one
// without a checker, disables spelling checks.
type Speller struct {
	Checker Checker
	Cache   *Cache
}

func NewSpeller(checker Checker, cache *Cache) *Speller {
	if cache == nil {
		cache = NewCache()
	}
	return &Speller{Checker: checker, Cache: cache}
}

func (s *Speller) Active() bool {
	return s != nil && s.Checker != nil && s.Cache != nil
}

func (s *Speller) Lookup(word string) ([]string, bool) {
	if !s.Active() {
		return nil, false
	}
	return s.Cache.Lookup(word, s.Checker)
}
