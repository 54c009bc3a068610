package validator

import "testing"

func TestValidator(t *testing.T) {
	tt := []struct {
		name    string
		build   func(v *Validator)
		wantErr string
	}{
		{
			name:    "no_errors",
			build:   func(v *Validator) {},
			wantErr: "",
		},
		{
			name: "check_ok_adds_nothing",
			build: func(v *Validator) {
				v.Check(true, "content", "content is required")
			},
			wantErr: "",
		},
		{
			name: "single_field",
			build: func(v *Validator) {
				v.Check(false, "content", "content is required")
			},
			wantErr: "content: content is required",
		},
		{
			name: "fields_sorted",
			build: func(v *Validator) {
				v.AddError("title", "title is required")
				v.AddError("content", "content is required")
				v.AddError("content", "content too long")
			},
			wantErr: "content: content is required, content too long; title: title is required",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			v := New()
			tc.build(v)

			err := v.AsError()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("want nil error; got %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("want error %q; got nil", tc.wantErr)
			}

			if got := err.Error(); got != tc.wantErr {
				t.Errorf("want %q; got %q", tc.wantErr, got)
			}
		})
	}
}

func TestValidator_First(t *testing.T) {
	v := New()
	v.AddError("mentor_user_id", "mentor_user_id required")
	v.AddError("mentor_user_id", "second")

	if got := v.First("mentor_user_id"); got != "mentor_user_id required" {
		t.Errorf("want first message; got %q", got)
	}

	if got := v.First("missing"); got != "" {
		t.Errorf("want empty string for unknown field; got %q", got)
	}
}
