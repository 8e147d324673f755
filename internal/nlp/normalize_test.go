package nlp

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "punctuation becomes spaces",
			in:   "Senior Engineer (Backend), Python/Go!",
			want: "senior engineer backend python go",
		},
		{
			name: "whitespace runs collapse",
			in:   "  too \t many\n\n spaces  ",
			want: "too many spaces",
		},
		{
			name: "digits survive",
			in:   "5+ years of C++ since 2019",
			want: "5 years of c since 2019",
		},
		{
			name: "unicode letters survive",
			in:   "Résumé für Zürich",
			want: "résumé für zürich",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "only punctuation",
			in:   "?!...---",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}

			if again := Normalize(got); again != got {
				t.Fatalf("Normalize is not idempotent: %q became %q", got, again)
			}
		})
	}
}
