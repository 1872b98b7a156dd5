// Package dict answers "is this a word?". The backing list loads in
// the background so the game can start immediately; until it lands,
// lookups report Unknown and the session simply rejects the attempt,
// letting the player retry a moment later.
package dict

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	lev "github.com/agnivade/levenshtein"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Result is the three-valued lookup answer.
type Result int

const (
	// Unknown means the dictionary is still loading.
	Unknown Result = iota
	// Invalid means the word is not in the dictionary.
	Invalid
	// Valid means the word is playable.
	Valid
)

// String implements fmt.Stringer for diagnostics.
func (r Result) String() string {
	switch r {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	}
	return "unknown"
}

// BuiltinSource marks the compiled-in starter list.
const BuiltinSource = "builtin"

const lookupCacheSize = 2048

type wordSet struct {
	words  map[string]struct{}
	list   []string
	source string
}

// Dictionary is a lazily loaded word set with a small lookup cache.
// Lookup and Suggest are safe to call from the game loop at any time.
type Dictionary struct {
	set     atomic.Pointer[wordSet]
	cache   *lru.Cache[string, Result]
	loaded  chan struct{}
	loadErr error // valid only after the loaded channel closes
}

// Open starts loading the word list at path in the background. An
// empty or unreadable path falls back to the built-in starter list, so
// the game is always playable.
func Open(path string) (*Dictionary, error) {
	cache, err := lru.New[string, Result](lookupCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup cache: %w", err)
	}
	d := &Dictionary{
		cache:  cache,
		loaded: make(chan struct{}),
	}
	go d.load(path)
	return d, nil
}

func (d *Dictionary) load(path string) {
	defer close(d.loaded)
	words, source, err := readWords(path)
	if err != nil || len(words) == 0 {
		d.loadErr = err
		words, source = builtinWords, BuiltinSource
	}
	d.publish(words, source)
}

// publish normalizes, dedups and installs the word set.
func (d *Dictionary) publish(words []string, source string) {
	set := &wordSet{
		words:  make(map[string]struct{}, len(words)),
		source: source,
	}
	for _, w := range words {
		norm, ok := Normalize(w)
		if !ok {
			continue
		}
		if _, dup := set.words[norm]; dup {
			continue
		}
		set.words[norm] = struct{}{}
		set.list = append(set.list, norm)
	}
	d.set.Store(set)
}

// Ready reports whether the word set is installed.
func (d *Dictionary) Ready() bool {
	return d.set.Load() != nil
}

// WaitReady blocks until the dictionary finishes loading or the
// context ends. It returns the load error, if any; a fallback to the
// built-in list still counts as ready.
func (d *Dictionary) WaitReady(ctx context.Context) error {
	select {
	case <-d.loaded:
		return d.loadErr
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Lookup classifies a word. Case-insensitive; words with characters
// outside A-Z are Invalid.
func (d *Dictionary) Lookup(word string) Result {
	set := d.set.Load()
	if set == nil {
		return Unknown
	}
	norm, ok := Normalize(word)
	if !ok {
		return Invalid
	}
	if r, hit := d.cache.Get(norm); hit {
		return r
	}
	r := Invalid
	if _, present := set.words[norm]; present {
		r = Valid
	}
	d.cache.Add(norm, r)
	return r
}

// Suggest returns the nearest dictionary word within maxDist edits of
// word, preferring smaller distances and earlier list order on ties.
// It reports false while loading or when nothing is close enough.
func (d *Dictionary) Suggest(word string, maxDist int) (string, bool) {
	set := d.set.Load()
	if set == nil || maxDist < 1 {
		return "", false
	}
	norm, ok := Normalize(word)
	if !ok || len(norm) == 0 {
		return "", false
	}
	best := ""
	bestDist := maxDist + 1
	for _, w := range set.list {
		// Length gap is a lower bound on edit distance.
		diff := len(w) - len(norm)
		if diff < 0 {
			diff = -diff
		}
		if diff >= bestDist || w == norm {
			continue
		}
		if dist := lev.ComputeDistance(norm, w); dist < bestDist {
			best, bestDist = w, dist
			if bestDist == 1 {
				break
			}
		}
	}
	return best, best != ""
}

// Size returns the number of loaded words, 0 while loading.
func (d *Dictionary) Size() int {
	if set := d.set.Load(); set != nil {
		return len(set.list)
	}
	return 0
}

// Source names where the words came from: a file path or
// BuiltinSource. Empty while loading.
func (d *Dictionary) Source() string {
	if set := d.set.Load(); set != nil {
		return set.source
	}
	return ""
}

// BuiltinList returns a copy of the compiled-in starter list.
func BuiltinList() []string {
	return append([]string(nil), builtinWords...)
}

// Normalize uppercases a candidate word and reports whether it
// contains only tracked letters.
func Normalize(word string) (string, bool) {
	up := strings.ToUpper(strings.TrimSpace(word))
	for i := 0; i < len(up); i++ {
		if up[i] < 'A' || up[i] > 'Z' {
			return "", false
		}
	}
	return up, true
}

// readWords loads one word per line, skipping blanks. An empty path
// means "no user list".
func readWords(path string) ([]string, string, error) {
	if path == "" {
		return nil, "", nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, "", err
	}
	if len(words) == 0 {
		return nil, "", fmt.Errorf("word list is empty: %s", path)
	}
	return words, path, nil
}
