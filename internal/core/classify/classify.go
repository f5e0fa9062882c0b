// Package classify turns dream text into a category, a summary and an
// interpretation
package classify

import (
	"context"
	"strings"
	"unicode/utf8"

	"dreammap/internal/core/dream"
)

// Analysis is the classifier output stored alongside the dream
type Analysis struct {
	Category       dream.Category `json:"category"`
	Summary        string         `json:"summary"`
	Interpretation string         `json:"interpretation"`
}

// Classifier analyzes one dream narrative
type Classifier interface {
	Classify(ctx context.Context, text string) (Analysis, error)
}

// DefaultInterpretation is returned by the keyword classifier
const DefaultInterpretation = "The void has received your transmission. The patterns suggest a reflection of your inner state."

// SummaryRunes is the keyword classifier summary length before the ellipsis
const SummaryRunes = 50

type rule struct {
	category dream.Category
	needles  []string
}

// rules are checked in order; the first rule with any substring match wins
var rules = []rule{
	{dream.Lucid, []string{"control", "knew i was dreaming", "changed", "aware"}},
	{dream.Stress, []string{"late", "test", "exam", "naked", "teeth", "forgot"}},
	{dream.Adventure, []string{"fly", "superpower", "explore", "quest", "travel", "space"}},
	{dream.Nightmare, []string{"blood", "chase", "monster", "scared", "die", "murder"}},
	{dream.Surreal, []string{"floating", "magic", "weird", "impossible", "melting"}},
	{dream.Romantic, []string{"love", "kiss", "date", "partner", "marriage"}},
	{dream.Prophetic, []string{"future", "god", "voice", "light", "predict"}},
}

// Keyword is a deterministic substring classifier. It never fails.
type Keyword struct{}

// Classify implements Classifier
func (Keyword) Classify(_ context.Context, text string) (Analysis, error) {
	return Analysis{
		Category:       KeywordCategory(text),
		Summary:        Summarize(text, SummaryRunes),
		Interpretation: DefaultInterpretation,
	}, nil
}

// KeywordCategory returns the first matching rule's category, Mundane if none
func KeywordCategory(text string) dream.Category {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, n := range r.needles {
			if strings.Contains(lower, n) {
				return r.category
			}
		}
	}
	return dream.Mundane
}

// Summarize keeps the first n runes and marks truncation with "..."
func Summarize(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	i := 0
	for pos := range text {
		if i == n {
			return text[:pos] + "..."
		}
		i++
	}
	return text
}

// Fallback tries Primary and falls back to Secondary when Primary errors or
// returns an unknown category
type Fallback struct {
	Primary   Classifier
	Secondary Classifier
	// OnError, when set, observes primary failures
	OnError func(err error)
}

// Classify implements Classifier
func (f Fallback) Classify(ctx context.Context, text string) (Analysis, error) {
	if f.Primary != nil {
		a, err := f.Primary.Classify(ctx, text)
		if err == nil && a.Category.Valid() {
			return a, nil
		}
		if err == nil {
			err = &InvalidCategoryError{Category: a.Category}
		}
		if f.OnError != nil {
			f.OnError(err)
		}
	}
	sec := f.Secondary
	if sec == nil {
		sec = Keyword{}
	}
	return sec.Classify(ctx, text)
}

// InvalidCategoryError reports a classifier answer outside the category set
type InvalidCategoryError struct{ Category dream.Category }

func (e *InvalidCategoryError) Error() string {
	return "classify: unknown category " + string(e.Category)
}
