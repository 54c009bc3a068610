package cockroach

import (
	"slices"
	"testing"

	"github.com/hicampus/hicampus/types"
)

func TestCockroach_Helpers(t *testing.T) {
	c := newTestCockroach(t)
	ctx := t.Context()

	cmp := createCampus(t)
	otherCollegeID, otherDepartmentID := createDepartment(t, cmp.SchoolID)

	h1 := createUser(t, c, cmp, asHelper("vi", "en"), withGender(types.GenderFemale))
	h2 := createUser(t, c, cmp, asHelper("vi"), withGender(types.GenderMale))
	h3 := createUser(t, c, cmp, asHelper("en"), withGender(types.GenderFemale))
	h4 := createUser(t, c, cmp, asHelper("vi"), withGender(types.GenderFemale), withDepartment(otherDepartmentID))
	createUser(t, c, cmp, withGender(types.GenderFemale), withLanguage("vi"))

	ids := func(pp []types.UserPreview) []int64 {
		out := make([]int64, len(pp))
		for i, p := range pp {
			out[i] = p.ID
		}
		return out
	}

	vi := "vi"
	female := types.GenderFemale

	tt := []struct {
		name string
		in   types.HelperFilter
		want []int64
	}{
		{
			name: "college_only",
			in:   types.HelperFilter{CollegeID: &cmp.CollegeID, Limit: 10},
			want: []int64{h1.ID, h2.ID, h3.ID},
		},
		{
			name: "language",
			in:   types.HelperFilter{CollegeID: &cmp.CollegeID, Language: &vi, Limit: 10},
			want: []int64{h1.ID, h2.ID},
		},
		{
			name: "language_and_gender",
			in:   types.HelperFilter{CollegeID: &cmp.CollegeID, Language: &vi, Gender: &female, Limit: 10},
			want: []int64{h1.ID},
		},
		{
			name: "other_college",
			in:   types.HelperFilter{CollegeID: &otherCollegeID, Limit: 10},
			want: []int64{h4.ID},
		},
		{
			name: "limit",
			in:   types.HelperFilter{CollegeID: &cmp.CollegeID, Limit: 2},
			want: []int64{h1.ID, h2.ID},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.Helpers(ctx, tc.in)
			if err != nil {
				t.Fatal(err)
			}

			if !slices.Equal(ids(got), tc.want) {
				t.Errorf("want %v; got %v", tc.want, ids(got))
			}
		})
	}

	t.Run("empty", func(t *testing.T) {
		male := types.GenderMale
		got, err := c.Helpers(ctx, types.HelperFilter{CollegeID: &otherCollegeID, Gender: &male, Limit: 10})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 0 {
			t.Errorf("want no helpers; got %v", got)
		}
	})
}
