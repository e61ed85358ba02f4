package match

import (
	"testing"
)

func headers(texts ...string) []Header {
	result := make([]Header, 0, len(texts))
	for i, text := range texts {
		result = append(result, NewHeader(i, text))
	}

	return result
}

func TestNewHeader(t *testing.T) {
	h := NewHeader(3, "  E-Mail  ")

	if h.Index != 3 {
		t.Errorf("Index = %d, want 3", h.Index)
	}

	if h.Text != "E-Mail" {
		t.Errorf("Text = %q, want %q", h.Text, "E-Mail")
	}

	if h.Normalized != "e mail" {
		t.Errorf("Normalized = %q, want %q", h.Normalized, "e mail")
	}

	// header text is split on CamelCase like a field name
	if h := NewHeader(0, "OrderID"); h.Normalized != NormalizeField("OrderID") {
		t.Errorf("Normalized = %q, want %q", h.Normalized, NormalizeField("OrderID"))
	}
}

func TestRankHeaders(t *testing.T) {
	candidates := RankHeaders("Name", headers("Full Name", "e-mail", "Age"))

	if len(candidates) != 3 {
		t.Fatalf("Expected 3 candidates, got %d", len(candidates))
	}

	// Best match should be "Full Name" (contains the field name)
	if candidates[0].Header.Text != "Full Name" {
		t.Errorf("Expected best match to be 'Full Name', got '%s'", candidates[0].Header.Text)
	}

	if candidates[0].Score != 100 {
		t.Errorf("Expected score 100 for contained name, got %d", candidates[0].Score)
	}

	if candidates[0].NormalizedField != "name" {
		t.Errorf("Expected normalized field 'name', got '%s'", candidates[0].NormalizedField)
	}

	for _, c := range candidates[1:] {
		if c.Score >= DefaultThreshold {
			t.Errorf("Header %q unexpectedly scored %d", c.Header.Text, c.Score)
		}
	}

	// Scores must be non-increasing
	for i := 1; i < len(candidates); i++ {
		if candidates[i].Score > candidates[i-1].Score {
			t.Errorf("Candidates not sorted at %d: %d > %d", i, candidates[i].Score, candidates[i-1].Score)
		}
	}
}

func TestRankHeaders_TieBreak(t *testing.T) {
	candidates := RankHeaders("Name", headers("Name A", "Name B", "Age"))

	if candidates[0].Score != 100 || candidates[1].Score != 100 {
		t.Fatalf("Expected two perfect scores, got %d and %d", candidates[0].Score, candidates[1].Score)
	}

	// Leftmost column wins on equal score
	if candidates[0].Header.Index != 0 {
		t.Errorf("Expected leftmost header first, got index %d", candidates[0].Header.Index)
	}
}

func TestRankHeaders_ExactBeforeContained(t *testing.T) {
	tests := []struct {
		field   string
		headers []string
		want    string
	}{
		{"Name", []string{"Customer Name", "Name"}, "Name"},
		{"ID", []string{"OrderID", "ID"}, "ID"},
		{"OrderID", []string{"ID", "OrderID"}, "OrderID"},
		{"OrderID", []string{"ID", "Order Id"}, "Order Id"},
		{"UserName", []string{"Name", "UserName"}, "UserName"},
		{"Name", []string{"UserName", "Name"}, "Name"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			candidates := RankHeaders(tt.field, headers(tt.headers...))

			best := candidates.Best()
			if best == nil || best.Header.Text != tt.want {
				t.Fatalf("RankHeaders(%q) best = %+v, want %q", tt.field, best, tt.want)
			}

			if !best.Exact {
				t.Errorf("Expected %q to be an exact match", best.Header.Text)
			}

			if candidates.IsAmbiguous(DefaultAmbiguityGap) {
				t.Errorf("Exact match %q reported as ambiguous", best.Header.Text)
			}
		})
	}
}

func TestRankHeaders_Empty(t *testing.T) {
	candidates := RankHeaders("Name", nil)

	if len(candidates) != 0 {
		t.Errorf("Expected no candidates, got %d", len(candidates))
	}

	if candidates.Best() != nil {
		t.Error("Expected nil best candidate")
	}

	if candidates.Accept(DefaultThreshold) != nil {
		t.Error("Expected nil accepted candidate")
	}
}

func TestCandidateList_Accept(t *testing.T) {
	candidates := RankHeaders("Email", headers("Full Name", "e-mail", "Age"))

	best := candidates.Accept(80)
	if best == nil {
		t.Fatal("Expected 'e-mail' to be accepted at 80")
	}

	if best.Header.Text != "e-mail" || best.Score != 80 {
		t.Errorf("Expected e-mail with score 80, got %q with %d", best.Header.Text, best.Score)
	}

	if candidates.Accept(81) != nil {
		t.Error("Expected nothing accepted at 81")
	}
}

func TestCandidateList_Top(t *testing.T) {
	candidates := CandidateList{
		{Header: Header{Text: "A"}, Score: 90},
		{Header: Header{Text: "B"}, Score: 80},
		{Header: Header{Text: "C"}, Score: 70},
	}

	top2 := candidates.Top(2)
	if len(top2) != 2 {
		t.Errorf("Expected 2 candidates, got %d", len(top2))
	}

	// Request more than available
	top10 := candidates.Top(10)
	if len(top10) != 3 {
		t.Errorf("Expected 3 candidates (all), got %d", len(top10))
	}
}

func TestCandidateList_IsAmbiguous(t *testing.T) {
	tests := []struct {
		name     string
		scores   []int
		gap      int
		expected bool
	}{
		{
			name:     "clear winner",
			scores:   []int{95, 50},
			gap:      DefaultAmbiguityGap,
			expected: false,
		},
		{
			name:     "close scores",
			scores:   []int{90, 88},
			gap:      DefaultAmbiguityGap,
			expected: true,
		},
		{
			name:     "exactly at gap",
			scores:   []int{90, 85},
			gap:      DefaultAmbiguityGap,
			expected: false,
		},
		{
			name:     "single candidate",
			scores:   []int{90},
			gap:      DefaultAmbiguityGap,
			expected: false,
		},
		{
			name:     "no candidates",
			scores:   nil,
			gap:      DefaultAmbiguityGap,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := make(CandidateList, len(tt.scores))
			for i, s := range tt.scores {
				candidates[i] = Candidate{Header: Header{Index: i}, Score: s}
			}

			result := candidates.IsAmbiguous(tt.gap)
			if result != tt.expected {
				t.Errorf("IsAmbiguous() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestCandidateList_AboveThreshold(t *testing.T) {
	candidates := CandidateList{
		{Header: Header{Text: "A"}, Score: 90},
		{Header: Header{Text: "B"}, Score: 80},
		{Header: Header{Text: "C"}, Score: 70},
	}

	above := candidates.AboveThreshold(80)
	if len(above) != 2 {
		t.Errorf("Expected 2 candidates at or above 80, got %d", len(above))
	}
}

func TestRankHeaders_Determinism(t *testing.T) {
	hs := headers("Name", "Full Name", "Customer Name", "Name Suffix")

	first := RankHeaders("Name", hs)

	// Run multiple times and verify same order
	for i := range 10 {
		again := RankHeaders("Name", hs)
		for j := range first {
			if first[j].Header.Index != again[j].Header.Index {
				t.Errorf("Run %d: order differs at position %d", i, j)
			}
		}
	}
}
