package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/hicampus/hicampus/auth"
	"github.com/hicampus/hicampus/cockroach"
	"github.com/hicampus/hicampus/service/servicetest"
	"github.com/hicampus/hicampus/types"
)

var (
	_ Store = (*cockroach.Cockroach)(nil)
	_ Store = (*servicetest.Store)(nil)
)

const testTokenKey = "0123456789abcdef0123456789abcdef"

type testEnv struct {
	svc       *Service
	store     *servicetest.Store
	collegeID int64
	deptID    int64
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	store := servicetest.NewStore()
	svc := New(Config{
		Store:      store,
		TokenKey:   testTokenKey,
		BcryptCost: bcrypt.MinCost,
	})

	const collegeID = 1000
	return testEnv{
		svc:       svc,
		store:     store,
		collegeID: collegeID,
		deptID:    store.AddDepartment(collegeID),
	}
}

func (env testEnv) seeker(lang string) types.User {
	return env.store.AddUser(types.User{
		Nickname:     "seeker",
		Gender:       types.GenderMale,
		MainLanguage: lang,
		SchoolID:     1,
		DepartmentID: env.deptID,
	})
}

func (env testEnv) helper(nickname string, gender types.Gender, langs ...string) types.User {
	return env.store.AddUser(types.User{
		Nickname:     nickname,
		Gender:       gender,
		MainLanguage: "ko",
		SchoolID:     1,
		DepartmentID: env.deptID,
		IsHelper:     true,
	}, langs...)
}

func as(u types.User) context.Context {
	return auth.ContextWithUser(context.Background(), u)
}
