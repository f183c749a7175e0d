package names

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "last comma first reordered",
			raw:  "Picasso, Pablo",
			want: "Pablo Picasso",
		},
		{
			name: "plain name unchanged",
			raw:  "Mary Cassatt",
			want: "Mary Cassatt",
		},
		{
			name: "whitespace collapsed and trimmed",
			raw:  "  Vincent   van  Gogh ",
			want: "Vincent van Gogh",
		},
		{
			name: "comma with extra whitespace",
			raw:  "  Kahlo ,   Frida ",
			want: "Frida Kahlo",
		},
		{
			name: "two commas passed through",
			raw:  "Rubens, Peter Paul, workshop of",
			want: "Rubens, Peter Paul, workshop of",
		},
		{
			name: "junior suffix stripped",
			raw:  "Holbein, Hans Jr.",
			want: "Hans Holbein",
		},
		{
			name: "senior suffix stripped",
			raw:  "Andrew Wyeth Sr.",
			want: "Andrew Wyeth",
		},
		{
			name: "roman numeral suffix stripped",
			raw:  "John Smith III",
			want: "John Smith",
		},
		{
			name: "mid-name suffix leaves no double space",
			raw:  "John II Smith",
			want: "John Smith",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "whitespace only input",
			raw:  "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

// Substring suffix stripping is not word-boundary aware. This pins the known
// limitation so a future fix is a deliberate behavior change, not an accident.
func TestNormalizeSuffixSubstringLimitation(t *testing.T) {
	if got := Normalize("Henry VIII"); got != "Henry V" {
		t.Errorf(`Normalize("Henry VIII") = %q, expected substring truncation to "Henry V"`, got)
	}
}
