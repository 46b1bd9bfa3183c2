package budget

import "strings"

// Classifier tags expense labels by case-insensitive substring match.
type Classifier struct {
	operating []string
	utility   []string
}

// NewClassifier builds a tagger from keyword lists. Keywords are substrings,
// so "electric" catches "FPL Electric Bill".
func NewClassifier(operating, utility []string) *Classifier {
	return &Classifier{
		operating: lowered(operating),
		utility:   lowered(utility),
	}
}

func lowered(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		out = append(out, strings.ToLower(k))
	}
	return out
}

// Classify buckets one label. Operating keywords take precedence when a
// label matches both lists.
func (c *Classifier) Classify(label string) Kind {
	l := strings.ToLower(label)
	for _, k := range c.operating {
		if strings.Contains(l, k) {
			return Operating
		}
	}
	for _, k := range c.utility {
		if strings.Contains(l, k) {
			return Utility
		}
	}
	return Other
}
