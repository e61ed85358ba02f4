package match

import (
	"sort"
	"strings"
)

// Header is a spreadsheet header cell prepared for matching.
type Header struct {
	Index      int    // zero-based column index
	Text       string // trimmed cell text
	Normalized string // NormalizeField(Text)
}

// NewHeader prepares a header cell for matching. Header text is normalized
// exactly like a field name, so a header written from a field name scores
// as an exact match for that field.
func NewHeader(index int, text string) Header {
	text = strings.TrimSpace(text)

	return Header{
		Index:      index,
		Text:       text,
		Normalized: NormalizeField(text),
	}
}

// Candidate represents a potential mapping from a header cell to a field.
type Candidate struct {
	Header Header

	// Score is the partial similarity between the normalized field name and
	// the normalized header text (0-100).
	Score int

	// Exact reports that the normalized field and header are equal.
	Exact bool

	// Metadata for debugging/explanation
	NormalizedField string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankHeaders scores every header as a candidate for field.
// Returns candidates sorted by score (descending), exact matches before
// partial ones, then by column index.
func RankHeaders(field string, headers []Header) CandidateList {
	fieldNorm := NormalizeField(field)

	candidates := make(CandidateList, 0, len(headers))
	for _, h := range headers {
		candidates = append(candidates, Candidate{
			Header:          h,
			Score:           PartialRatio(fieldNorm, h.Normalized),
			Exact:           fieldNorm == h.Normalized,
			NormalizedField: fieldNorm,
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then exact before partial, then left-to-right
// by column for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	if c[i].Exact != c[j].Exact {
		return c[i].Exact
	}
	// Tie-breaker: the leftmost column wins
	return c[i].Header.Index < c[j].Header.Index
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}
	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}

// Accept returns the best candidate if its score reaches threshold.
func (c CandidateList) Accept(threshold int) *Candidate {
	best := c.Best()
	if best == nil || best.Score < threshold {
		return nil
	}
	return best
}

// IsAmbiguous returns true if the top two candidates are within gap points.
// An exact best candidate is never ambiguous against a partial runner-up.
func (c CandidateList) IsAmbiguous(gap int) bool {
	if len(c) < 2 {
		return false
	}

	if c[0].Exact && !c[1].Exact {
		return false
	}
	return c[0].Score-c[1].Score < gap
}

// AboveThreshold returns candidates with a score of at least threshold.
func (c CandidateList) AboveThreshold(threshold int) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}
	return result
}

// Matching thresholds.
const (
	// DefaultThreshold is the minimum score for accepting a header.
	DefaultThreshold = 80
	// DefaultAmbiguityGap is the score difference that marks two accepted
	// candidates as ambiguous.
	DefaultAmbiguityGap = 5
)
