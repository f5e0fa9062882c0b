// Package symbols extracts trending words from dream narratives
package symbols

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Symbol is a ranked word rendered as a hashtag
type Symbol struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// DefaultLimit is the number of symbols shown per region
const DefaultLimit = 4

// MinLength is the shortest token kept, in runes
const MinLength = 3

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "and", "a", "to", "of", "in", "i", "is", "that", "it", "on", "you",
		"this", "for", "but", "with", "are", "have", "be", "at", "or", "as", "was",
		"so", "if", "out", "not", "me", "my", "dream", "dreamed", "saw", "felt",
		"like", "just", "had", "about", "from", "up", "down", "went", "go", "get",
		"see", "one", "what", "some", "can", "very", "really", "then", "when", "there",
	} {
		stopWords[w] = struct{}{}
	}
}

// punctuation characters are deleted, not replaced by a space, so
// "glass-and-water" becomes one token
var punctuation = strings.NewReplacer(
	".", "", ",", "", "/", "", "#", "", "!", "", "$", "", "%", "", "^", "",
	"&", "", "*", "", ";", "", ":", "", "{", "", "}", "", "=", "", "-", "",
	"_", "", "`", "", "~", "", "(", "", ")", "",
)

// IsStopWord reports whether w (already lower case) is ignored
func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

// Tokenize lower-cases text, strips punctuation, splits on whitespace and
// drops short tokens and stop words
func Tokenize(text string) []string {
	fields := strings.Fields(punctuation.Replace(strings.ToLower(text)))
	out := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) < MinLength || IsStopWord(f) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Counter tallies tokens and remembers the order words were first seen
type Counter struct {
	index map[string]int
	words []Symbol
}

// NewCounter returns an empty counter
func NewCounter() *Counter { return &Counter{index: map[string]int{}} }

// Add tokenizes text and tallies every kept token
func (c *Counter) Add(text string) {
	for _, tok := range Tokenize(text) {
		if i, ok := c.index[tok]; ok {
			c.words[i].Count++
			continue
		}
		c.index[tok] = len(c.words)
		c.words = append(c.words, Symbol{Word: tok, Count: 1})
	}
}

// Top returns up to limit hashtags by descending count; equal counts keep
// first-seen order. A non-positive limit yields an empty result.
func (c *Counter) Top(limit int) []Symbol {
	if limit <= 0 || len(c.words) == 0 {
		return []Symbol{}
	}
	ranked := make([]Symbol, len(c.words))
	copy(ranked, c.words)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	for i := range ranked {
		ranked[i].Word = "#" + ranked[i].Word
	}
	return ranked
}

// Trending ranks the words of texts, see Counter.Top
func Trending(texts []string, limit int) []Symbol {
	c := NewCounter()
	for _, t := range texts {
		c.Add(t)
	}
	return c.Top(limit)
}
