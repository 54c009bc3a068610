package types

import (
	"slices"
	"testing"
)

func TestMatchRequestStatus_CanTransitionTo(t *testing.T) {
	tt := []struct {
		from MatchRequestStatus
		to   MatchRequestStatus
		want bool
	}{
		{from: MatchRequestStatusPending, to: MatchRequestStatusOffered, want: true},
		{from: MatchRequestStatusPending, to: MatchRequestStatusAccepted, want: false},
		{from: MatchRequestStatusPending, to: MatchRequestStatusRejected, want: true},
		{from: MatchRequestStatusPending, to: MatchRequestStatusCancelled, want: true},
		{from: MatchRequestStatusOffered, to: MatchRequestStatusAccepted, want: true},
		{from: MatchRequestStatusOffered, to: MatchRequestStatusOffered, want: false},
		{from: MatchRequestStatusOffered, to: MatchRequestStatusCancelled, want: true},
		{from: MatchRequestStatusAccepted, to: MatchRequestStatusOffered, want: false},
		{from: MatchRequestStatusRejected, to: MatchRequestStatusOffered, want: false},
		{from: MatchRequestStatusCancelled, to: MatchRequestStatusPending, want: false},
	}

	for _, tc := range tt {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
				t.Errorf("want %v; got %v", tc.want, got)
			}
		})
	}
}

func TestMatchRequestStatus_IsTerminal(t *testing.T) {
	terminal := []MatchRequestStatus{
		MatchRequestStatusAccepted,
		MatchRequestStatusRejected,
		MatchRequestStatusCancelled,
	}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Errorf("want %s to be terminal", s)
		}
	}

	for _, s := range []MatchRequestStatus{MatchRequestStatusPending, MatchRequestStatusOffered, "unknown"} {
		if s.IsTerminal() {
			t.Errorf("want %s to not be terminal", s)
		}
	}
}

func TestMatchRequestStatus_SourceStatuses(t *testing.T) {
	tt := []struct {
		to   MatchRequestStatus
		want []MatchRequestStatus
	}{
		{to: MatchRequestStatusOffered, want: []MatchRequestStatus{MatchRequestStatusPending}},
		{to: MatchRequestStatusAccepted, want: []MatchRequestStatus{MatchRequestStatusOffered}},
		{to: MatchRequestStatusRejected, want: []MatchRequestStatus{MatchRequestStatusPending, MatchRequestStatusOffered}},
		{to: MatchRequestStatusCancelled, want: []MatchRequestStatus{MatchRequestStatusPending, MatchRequestStatusOffered}},
		{to: MatchRequestStatusPending, want: nil},
	}

	for _, tc := range tt {
		t.Run(string(tc.to), func(t *testing.T) {
			if got := tc.to.SourceStatuses(); !slices.Equal(got, tc.want) {
				t.Errorf("want %v; got %v", tc.want, got)
			}
		})
	}
}

func TestCreateMatchRequest_Validate(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		blank := "   "
		in := CreateMatchRequest{Notes: &blank}
		if err := in.Validate(); err != nil {
			t.Fatal(err)
		}

		if in.PreferredGender != PreferredGenderAny {
			t.Errorf("want preferred gender any; got %q", in.PreferredGender)
		}

		if in.Notes != nil {
			t.Errorf("want blank notes dropped; got %q", *in.Notes)
		}
	})

	t.Run("invalid_gender", func(t *testing.T) {
		in := CreateMatchRequest{PreferredGender: "robot"}
		if err := in.Validate(); err == nil {
			t.Fatal("want error for unknown preferred gender")
		}
	})

	t.Run("invalid_college", func(t *testing.T) {
		collegeID := int64(-1)
		in := CreateMatchRequest{PreferredCollegeID: &collegeID}
		if err := in.Validate(); err == nil {
			t.Fatal("want error for negative college id")
		}
	})
}

func TestFindHelpers_Validate(t *testing.T) {
	limit := func(n uint) *uint { return &n }

	tt := []struct {
		name      string
		in        FindHelpers
		wantErr   bool
		wantLimit *uint
	}{
		{name: "default_limit", in: FindHelpers{RequestID: 1}},
		{name: "max_limit", in: FindHelpers{RequestID: 1, Limit: limit(MaxHelpersLimit)}, wantLimit: limit(MaxHelpersLimit)},
		{name: "zero_limit", in: FindHelpers{RequestID: 1, Limit: limit(0)}, wantErr: true},
		{name: "limit_clamped", in: FindHelpers{RequestID: 1, Limit: limit(MaxHelpersLimit + 50)}, wantLimit: limit(MaxHelpersLimit)},
		{name: "missing_request", in: FindHelpers{}, wantErr: true},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("want error=%v; got %v", tc.wantErr, err)
			}
			if tc.wantLimit != nil && (tc.in.Limit == nil || *tc.in.Limit != *tc.wantLimit) {
				t.Errorf("want limit %d; got %v", *tc.wantLimit, tc.in.Limit)
			}
		})
	}
}

func TestAcceptMatch_MentorError(t *testing.T) {
	offered := int64(7)

	tt := []struct {
		name      string
		mentor    int64
		offeredTo *int64
		wantErr   bool
	}{
		{name: "ok", mentor: 7, offeredTo: &offered},
		{name: "missing_mentor", mentor: 0, offeredTo: &offered, wantErr: true},
		{name: "other_mentor", mentor: 8, offeredTo: &offered, wantErr: true},
		{name: "not_offered", mentor: 7, wantErr: true},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			in := AcceptMatch{RequestID: 1, MentorUserID: tc.mentor}
			if err := in.Validate(); err != nil {
				t.Fatalf("request id alone should validate; got %v", err)
			}

			err := in.MentorError(tc.offeredTo)
			if (err != nil) != tc.wantErr {
				t.Errorf("want error=%v; got %v", tc.wantErr, err)
			}
		})
	}
}

func TestOfferMatch_Validate(t *testing.T) {
	in := OfferMatch{RequestID: 5}
	err := in.Validate()
	if err == nil {
		t.Fatal("want error for missing mentor")
	}

	if got, want := err.Error(), "mentor_user_id: mentor_user_id required"; got != want {
		t.Errorf("want %q; got %q", want, got)
	}
}

func TestSendMessage_Validate(t *testing.T) {
	in := SendMessage{ConversationID: 1, Content: "  \n\t "}
	if err := in.Validate(); err == nil {
		t.Fatal("want error for blank content")
	}

	in = SendMessage{ConversationID: 1, Content: "  hello  "}
	if err := in.Validate(); err != nil {
		t.Fatal(err)
	}
	if in.Content != "hello" {
		t.Errorf("want trimmed content; got %q", in.Content)
	}
}
