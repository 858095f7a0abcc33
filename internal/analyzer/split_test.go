package analyzer

import (
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "terminators",
			text: "First sentence. Second one! Third one?",
			want: []string{"First sentence.", "Second one!", "Third one?"},
		},
		{
			name: "whitespace collapsed",
			text: "  Lots   of\n\n\twhitespace.  ",
			want: []string{"Lots of whitespace."},
		},
		{
			name: "trailing fragment kept",
			text: "Complete sentence. And a fragment",
			want: []string{"Complete sentence.", "And a fragment"},
		},
		{
			name: "no terminator at all",
			text: "Just a heading",
			want: []string{"Just a heading"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: "   \n\t  ",
			want: nil,
		},
		{
			name: "repeated punctuation stays together",
			text: "Wow!! Really.",
			want: []string{"Wow!!", "Really."},
		},
		{
			name: "no-break space splits",
			text: "Done. Next step.",
			want: []string{"Done.", "Next step."},
		},
		{
			name: "unicode whitespace collapsed",
			text: "wide  gap here",
			want: []string{"wide gap here"},
		},
		{
			name: "no split without following space",
			text: "v1.2 shipped.Done",
			want: []string{"v1.2 shipped.Done"},
		},
		{
			name: "abbreviations split naively",
			text: "We test e.g. everything.",
			want: []string{"We test e.g.", "everything."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSentences(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
