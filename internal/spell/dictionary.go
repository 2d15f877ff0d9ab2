package spell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/language"
)

const (
	maxSuggestions = 5
	maxDistance    = 2
)

// Dictionary is a word-list Checker. It reads plain lists (one word per line)
// and hunspell .dic files (count header, "/FLAGS" suffixes).
type Dictionary struct {
	words map[string]struct{}
	// byLen buckets words by rune length so suggestions only compare
	// candidates within maxDistance of the query length.
	byLen map[int][]string
}

func NewDictionary(words []string) *Dictionary {
	d := &Dictionary{
		words: make(map[string]struct{}, len(words)),
		byLen: make(map[int][]string),
	}
	for _, w := range words {
		d.add(w)
	}
	for n := range d.byLen {
		sort.Strings(d.byLen[n])
	}
	return d
}

func (d *Dictionary) add(w string) {
	w = strings.ToLower(strings.TrimSpace(w))
	if w == "" {
		return
	}
	if _, ok := d.words[w]; ok {
		return
	}
	d.words[w] = struct{}{}
	n := len([]rune(w))
	d.byLen[n] = append(d.byLen[n], w)
}

func ReadDictionary(r io.Reader) (*Dictionary, error) {
	var words []string
	sc := bufio.NewScanner(r)
	first := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if first {
			first = false
			// hunspell word count header
			if _, err := strconv.Atoi(line); err == nil {
				continue
			}
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if idx := strings.IndexByte(line, '/'); idx >= 0 {
			line = line[:idx]
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	return NewDictionary(words), nil
}

func LoadDictionary(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()
	return ReadDictionary(f)
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// Check accepts known words and tokens without letters, such as numbers.
func (d *Dictionary) Check(word string) bool {
	if !strings.ContainsFunc(word, unicode.IsLetter) {
		return true
	}
	_, ok := d.words[strings.ToLower(word)]
	return ok
}

// Suggest returns up to five known words within edit distance two, closest
// first and alphabetical within a distance.
func (d *Dictionary) Suggest(word string) []string {
	word = strings.ToLower(word)
	n := len([]rune(word))

	type candidate struct {
		word string
		dist int
	}
	var found []candidate
	for l := n - maxDistance; l <= n+maxDistance; l++ {
		for _, w := range d.byLen[l] {
			if dist := levenshtein.ComputeDistance(word, w); dist <= maxDistance {
				found = append(found, candidate{w, dist})
			}
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].dist != found[j].dist {
			return found[i].dist < found[j].dist
		}
		return found[i].word < found[j].word
	})

	out := []string{}
	for i := 0; i < len(found) && i < maxSuggestions; i++ {
		out = append(out, found[i].word)
	}
	return out
}

// ParseLanguage validates a spellcheck language. Both "en_GB" and "en-GB"
// spellings are accepted, and the region "UK" is read as "GB".
func ParseLanguage(s string) (language.Tag, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "-")
	if base, region, ok := strings.Cut(s, "-"); ok && strings.EqualFold(region, "UK") {
		s = base + "-GB"
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid spellcheck language %q: %w", s, err)
	}
	return tag, nil
}

// DictionaryFile is the hunspell file name for a language, e.g. "en_GB.dic".
func DictionaryFile(tag language.Tag) string {
	base, _, region := tag.Raw()
	if region.String() == "ZZ" {
		return base.String() + ".dic"
	}
	return base.String() + "_" + region.String() + ".dic"
}

// FindDictionary looks for the language's word list in the usual hunspell
// locations, falling back to the system word list.
func FindDictionary(tag language.Tag, dirs ...string) (string, error) {
	if len(dirs) == 0 {
		dirs = []string{"/usr/share/hunspell", "/usr/share/myspell", "/usr/share/myspell/dicts"}
	}
	name := DictionaryFile(tag)
	for _, dir := range dirs {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	if _, err := os.Stat("/usr/share/dict/words"); err == nil {
		return "/usr/share/dict/words", nil
	}
	return "", fmt.Errorf("no dictionary found for %s", tag)
}
