package textutil

import "testing"

func TestSmartTrim(t *testing.T) {
	tt := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "spaces_only", in: "   \t ", want: ""},
		{name: "inner_spaces", in: "  hello    world  ", want: "hello world"},
		{name: "linebreaks", in: "first\n\n\n\nsecond", want: "first\n\nsecond"},
		{name: "trailing_lines", in: "\n\nhi\n\n", want: "hi"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := SmartTrim(tc.in); got != tc.want {
				t.Errorf("want %q; got %q", tc.want, got)
			}
		})
	}
}

func TestNilIfBlank(t *testing.T) {
	if got := NilIfBlank(nil); got != nil {
		t.Errorf("want nil for nil input; got %q", *got)
	}

	blank := "  \n "
	if got := NilIfBlank(&blank); got != nil {
		t.Errorf("want nil for blank input; got %q", *got)
	}

	notes := "  prefers   mornings "
	got := NilIfBlank(&notes)
	if got == nil || *got != "prefers mornings" {
		t.Errorf("want trimmed notes; got %v", got)
	}
}

func TestRuneCountAtMost(t *testing.T) {
	if !RuneCountAtMost("안녕하세요", 5) {
		t.Error("want five hangul runes to fit in five")
	}
	if RuneCountAtMost("안녕하세요!", 5) {
		t.Error("want six runes to exceed five")
	}
}
