package errs

import (
	"fmt"
	"testing"
)

func TestIs(t *testing.T) {
	tt := []struct {
		name string
		err  error
		kind Kind
		want bool
	}{
		{
			name: "direct",
			err:  NewNotFoundError("match request not found"),
			kind: KindNotFound,
			want: true,
		},
		{
			name: "wrapped",
			err:  fmt.Errorf("accept: %w", NewFailedPreconditionError("match request must be offered")),
			kind: KindFailedPrecondition,
			want: true,
		},
		{
			name: "other_kind",
			err:  PermissionDenied,
			kind: KindNotFound,
			want: false,
		},
		{
			name: "plain_error",
			err:  fmt.Errorf("sql select: boom"),
			kind: KindNotFound,
			want: false,
		},
		{
			name: "nil",
			err:  nil,
			kind: KindNotFound,
			want: false,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := Is(tc.err, tc.kind); got != tc.want {
				t.Errorf("Is(%v, %s) = %v; want %v", tc.err, tc.kind, got, tc.want)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	withField := NewInvalidArgumentError("content", "content required")
	if got, want := withField.Error(), "invalid_argument (field: content): content required"; got != want {
		t.Errorf("want %q; got %q", want, got)
	}

	withoutField := NewInvalidArgumentError("", "invalid limit")
	if withoutField.Field != nil {
		t.Errorf("want nil field for empty field name")
	}
	if got, want := withoutField.Error(), "invalid_argument: invalid limit"; got != want {
		t.Errorf("want %q; got %q", want, got)
	}
}
