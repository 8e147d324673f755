package report

import (
	"encoding/json"
	"os"
	"testing"
)

func TestBand(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, "weak"},
		{49, "weak"},
		{50, "moderate"},
		{69, "moderate"},
		{70, "strong"},
		{100, "strong"},
	}

	for _, tc := range cases {
		r := &Report{Score: tc.score}
		if got := r.Band(); got != tc.want {
			t.Fatalf("Band() for score %d = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestDumpToTmpFile(t *testing.T) {
	r := &Report{
		RunID:           "run-42",
		Score:           77,
		Tier:            TierLinguistic,
		MissingKeywords: []string{"kubernetes"},
		Advice: &Advice{
			Summary: "summary",
			Raw:     "must not be serialized",
		},
	}

	filename, err := r.DumpToTmpFile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer os.Remove(filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("reading dump: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("dump is not valid JSON: %v", err)
	}

	if decoded["run_id"] != "run-42" {
		t.Fatalf("unexpected run_id: %v", decoded["run_id"])
	}

	advice, ok := decoded["advice"].(map[string]any)
	if !ok {
		t.Fatalf("expected advice object, got %v", decoded["advice"])
	}
	if _, leaked := advice["Raw"]; leaked {
		t.Fatalf("raw response leaked into the dump")
	}
}
