package service

import (
	"testing"

	"github.com/hicampus/hicampus/errs"
	"github.com/hicampus/hicampus/ptr"
	"github.com/hicampus/hicampus/types"
)

func TestService_FindHelpers(t *testing.T) {
	env := newTestEnv(t)
	seeker := env.seeker("en")

	want := env.helper("female_en", types.GenderFemale, "en", "ko")
	env.helper("male_en", types.GenderMale, "en")
	env.helper("female_ko", types.GenderFemale, "ko")

	created, err := env.svc.CreateMatchRequest(as(seeker), types.CreateMatchRequest{
		PreferredGender: types.PreferredGenderFemale,
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := env.svc.FindHelpers(as(seeker), types.FindHelpers{RequestID: created.ID})
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 1 || got[0].ID != want.ID {
		t.Fatalf("want only helper %d; got %+v", want.ID, got)
	}

	filters := env.store.HelperFilters()
	if len(filters) != 1 {
		t.Fatalf("want 1 store call; got %d", len(filters))
	}

	f := filters[0]
	if f.Language == nil || *f.Language != "en" {
		t.Errorf("want language filter en; got %v", f.Language)
	}
	if f.Gender == nil || *f.Gender != types.GenderFemale {
		t.Errorf("want gender filter female; got %v", f.Gender)
	}
	if f.CollegeID != nil {
		t.Errorf("want no college filter; got %d", *f.CollegeID)
	}
	if f.Limit != types.DefaultHelpersLimit {
		t.Errorf("want default limit %d; got %d", types.DefaultHelpersLimit, f.Limit)
	}
}

func TestService_FindHelpers_anyGenderAndCollege(t *testing.T) {
	env := newTestEnv(t)
	seeker := env.seeker("en")

	const otherCollegeID = 2000
	otherDept := env.store.AddDepartment(otherCollegeID)

	inCollege := env.helper("in_college", types.GenderMale, "en")
	env.store.AddUser(types.User{
		Nickname:     "other_college",
		Gender:       types.GenderFemale,
		SchoolID:     1,
		DepartmentID: otherDept,
		IsHelper:     true,
	}, "en")

	created, err := env.svc.CreateMatchRequest(as(seeker), types.CreateMatchRequest{
		PreferredCollegeID: ptr.From(env.collegeID),
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := env.svc.FindHelpers(as(seeker), types.FindHelpers{
		RequestID: created.ID,
		Limit:     ptr.From(uint(5)),
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 1 || got[0].ID != inCollege.ID {
		t.Fatalf("want only helper %d; got %+v", inCollege.ID, got)
	}

	f := env.store.HelperFilters()[0]
	if f.Gender != nil {
		t.Errorf("want no gender filter for any; got %v", *f.Gender)
	}
	if f.Limit != 5 {
		t.Errorf("want limit 5; got %d", f.Limit)
	}
}

func TestService_FindHelpers_errors(t *testing.T) {
	env := newTestEnv(t)
	seeker := env.seeker("en")

	tt := []struct {
		name     string
		in       types.FindHelpers
		wantKind errs.Kind
	}{
		{
			name:     "unknown_request",
			in:       types.FindHelpers{RequestID: 999},
			wantKind: errs.KindNotFound,
		},
		{
			name:     "zero_limit",
			in:       types.FindHelpers{RequestID: 1, Limit: ptr.From(uint(0))},
			wantKind: "",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.svc.FindHelpers(as(seeker), tc.in)
			if err == nil {
				t.Fatal("want error")
			}
			if tc.wantKind != "" && !errs.Is(err, tc.wantKind) {
				t.Errorf("want %s; got %v", tc.wantKind, err)
			}
		})
	}
}

func TestService_FindHelpers_limitClamped(t *testing.T) {
	env := newTestEnv(t)
	seeker := env.seeker("en")

	created, err := env.svc.CreateMatchRequest(as(seeker), types.CreateMatchRequest{})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := env.svc.FindHelpers(as(seeker), types.FindHelpers{
		RequestID: created.ID,
		Limit:     ptr.From(types.MaxHelpersLimit + 1),
	}); err != nil {
		t.Fatal(err)
	}

	f := env.store.HelperFilters()[0]
	if f.Limit != types.MaxHelpersLimit {
		t.Errorf("want limit clamped to %d; got %d", types.MaxHelpersLimit, f.Limit)
	}
}
