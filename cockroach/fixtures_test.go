package cockroach

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/hicampus/hicampus/types"
)

var fixtureSeq atomic.Int64

type campus struct {
	SchoolID     int64
	CollegeID    int64
	DepartmentID int64
}

func createCampus(t *testing.T) campus {
	t.Helper()
	ctx := t.Context()

	var out campus
	err := testDB.QueryRow(ctx, `INSERT INTO schools (school_name) VALUES ($1) RETURNING id`,
		fmt.Sprintf("school-%d", fixtureSeq.Add(1))).Scan(&out.SchoolID)
	if err != nil {
		t.Fatalf("insert school: %v", err)
	}

	err = testDB.QueryRow(ctx, `INSERT INTO colleges (school_id, name) VALUES ($1, 'Engineering') RETURNING id`,
		out.SchoolID).Scan(&out.CollegeID)
	if err != nil {
		t.Fatalf("insert college: %v", err)
	}

	err = testDB.QueryRow(ctx, `INSERT INTO departments (college_id, name) VALUES ($1, 'Computer Science') RETURNING id`,
		out.CollegeID).Scan(&out.DepartmentID)
	if err != nil {
		t.Fatalf("insert department: %v", err)
	}

	return out
}

// createDepartment adds a second college with its own department.
func createDepartment(t *testing.T, schoolID int64) (collegeID, departmentID int64) {
	t.Helper()
	ctx := t.Context()

	err := testDB.QueryRow(ctx, `INSERT INTO colleges (school_id, name) VALUES ($1, 'Humanities') RETURNING id`,
		schoolID).Scan(&collegeID)
	if err != nil {
		t.Fatalf("insert college: %v", err)
	}

	err = testDB.QueryRow(ctx, `INSERT INTO departments (college_id, name) VALUES ($1, 'History') RETURNING id`,
		collegeID).Scan(&departmentID)
	if err != nil {
		t.Fatalf("insert department: %v", err)
	}

	return collegeID, departmentID
}

type userOpt func(in *types.Register)

func asHelper(langs ...string) userOpt {
	return func(in *types.Register) {
		in.IsHelper = true
		in.HelperLanguages = langs
	}
}

func withGender(g types.Gender) userOpt {
	return func(in *types.Register) {
		in.Gender = g
	}
}

func withDepartment(departmentID int64) userOpt {
	return func(in *types.Register) {
		in.DepartmentID = departmentID
	}
}

func withLanguage(lang string) userOpt {
	return func(in *types.Register) {
		in.MainLanguage = lang
	}
}

func createUser(t *testing.T, c *Cockroach, cmp campus, opts ...userOpt) types.User {
	t.Helper()
	ctx := t.Context()

	n := fixtureSeq.Add(1)
	in := types.Register{
		Email:           fmt.Sprintf("user%d@example.com", n),
		Password:        "password123",
		Nickname:        fmt.Sprintf("user%d", n),
		Realname:        fmt.Sprintf("User %d", n),
		Gender:          types.GenderMale,
		MainLanguage:    "en",
		NationalityISO2: "US",
		SchoolID:        cmp.SchoolID,
		DepartmentID:    cmp.DepartmentID,
		EnrollmentYear:  2024,
	}
	for _, opt := range opts {
		opt(&in)
	}

	if err := in.Validate(); err != nil {
		t.Fatalf("invalid user fixture: %v", err)
	}

	created, err := c.CreateUser(ctx, in, "not-a-real-hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	user, err := c.User(ctx, created.ID)
	if err != nil {
		t.Fatalf("retrieve user: %v", err)
	}

	return user
}

func createMatchRequest(t *testing.T, c *Cockroach, requesterID int64, mutate ...func(in *types.CreateMatchRequest)) int64 {
	t.Helper()
	ctx := t.Context()

	in := types.CreateMatchRequest{}
	for _, fn := range mutate {
		fn(&in)
	}
	in.SetLoggedInUserID(requesterID)
	if err := in.Validate(); err != nil {
		t.Fatalf("invalid match request fixture: %v", err)
	}

	created, err := c.CreateMatchRequest(ctx, in)
	if err != nil {
		t.Fatalf("create match request: %v", err)
	}

	return created.ID
}

func offer(t *testing.T, c *Cockroach, requestID, mentorID int64) {
	t.Helper()
	ctx := t.Context()

	_, err := c.UpdateMatchRequest(ctx, types.UpdateMatchRequest{
		RequestID:       requestID,
		To:              types.MatchRequestStatusOffered,
		OfferedToUserID: &mentorID,
	})
	if err != nil {
		t.Fatalf("offer match request: %v", err)
	}
}

func countRows(t *testing.T, q string, args ...any) int {
	t.Helper()
	ctx := t.Context()

	var n int
	if err := testDB.QueryRow(ctx, q, args...).Scan(&n); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}
