package ptr

import "testing"

func TestNilIfZero(t *testing.T) {
	if got := NilIfZero(""); got != nil {
		t.Errorf("want nil for empty string; got %q", *got)
	}

	if got := NilIfZero("en"); got == nil || *got != "en" {
		t.Errorf("want pointer to en; got %v", got)
	}

	if got := NilIfZero(int64(0)); got != nil {
		t.Errorf("want nil for zero; got %d", *got)
	}
}

func TestOr(t *testing.T) {
	if got := Or(nil, uint(10)); got != 10 {
		t.Errorf("want default 10; got %d", got)
	}

	if got := Or(From(uint(3)), 10); got != 3 {
		t.Errorf("want 3; got %d", got)
	}
}
