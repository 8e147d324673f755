package nlp

import (
	"reflect"
	"testing"
)

func TestTechVocabularyMatches(t *testing.T) {
	vocab := NewTechVocabulary()

	cases := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain terms",
			text: "Built services in Python with SQL and Docker",
			want: []string{"python", "sql", "docker"},
		},
		{
			name: "punctuated term",
			text: "Ten years of C++ development",
			want: []string{"c++"},
		},
		{
			name: "multi word term",
			text: "applied machine learning to fraud detection",
			want: []string{"machine learning"},
		},
		{
			name: "single letter language needs boundaries",
			text: "statistics in R and Python",
			want: []string{"r", "python"},
		},
		{
			name: "no match inside longer words",
			text: "restarting the racket previewer",
			want: nil,
		},
		{
			name: "java does not match inside javascript",
			text: "modern JavaScript tooling",
			want: []string{"javascript"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := vocab.Matches(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Matches(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestTechVocabularyExtraTerms(t *testing.T) {
	vocab := NewTechVocabulary("  Terraform ", "", "ansible")

	got := vocab.Matches("Terraform plus Ansible runs")
	want := []string{"terraform", "ansible"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected extra terms to match, got %v", got)
	}
}
