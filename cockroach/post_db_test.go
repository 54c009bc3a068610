package cockroach

import (
	"testing"

	"github.com/hicampus/hicampus/errs"
	"github.com/hicampus/hicampus/types"
)

func TestCockroach_Posts(t *testing.T) {
	c := newTestCockroach(t)
	ctx := t.Context()

	cmp := createCampus(t)
	author := createUser(t, c, cmp, withLanguage("ko"))

	var boardID int64
	err := testDB.QueryRow(ctx, `INSERT INTO boards (school_id, name) VALUES ($1, 'Free board') RETURNING id`, cmp.SchoolID).Scan(&boardID)
	if err != nil {
		t.Fatalf("insert board: %v", err)
	}

	create := func(title string, anonymous bool) types.Created {
		in := types.CreatePost{BoardID: boardID, Title: title, Content: "content of " + title, IsAnonymous: anonymous}
		in.SetLoggedInUserID(author.ID)
		in.SetOriginalLang(author.MainLanguage)
		created, err := c.CreatePost(ctx, in)
		if err != nil {
			t.Fatal(err)
		}
		return created
	}

	named := create("named", false)
	anon := create("anon", true)

	got, err := c.Posts(ctx, types.ListPosts{BoardID: boardID})
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 2 {
		t.Fatalf("want 2 posts; got %d", len(got))
	}

	if got[0].ID != anon.ID || got[1].ID != named.ID {
		t.Fatalf("want newest first; got %d then %d", got[0].ID, got[1].ID)
	}

	if got[0].UserID != nil || got[0].Nickname != types.AnonymousAuthor {
		t.Errorf("want anonymous author masked; got %+v", got[0])
	}

	if got[1].UserID == nil || *got[1].UserID != author.ID || got[1].Nickname != author.Nickname {
		t.Errorf("want named author; got %+v", got[1])
	}

	if got[1].OriginalLang == nil || *got[1].OriginalLang != "ko" {
		t.Errorf("want original lang ko; got %v", got[1].OriginalLang)
	}

	t.Run("unknown_board", func(t *testing.T) {
		if _, err := c.Posts(ctx, types.ListPosts{BoardID: 1 << 60}); !errs.IsNotFound(err) {
			t.Errorf("want not found listing; got %v", err)
		}

		in := types.CreatePost{BoardID: 1 << 60, Title: "t", Content: "c"}
		in.SetLoggedInUserID(author.ID)
		if _, err := c.CreatePost(ctx, in); !errs.IsNotFound(err) {
			t.Errorf("want not found creating; got %v", err)
		}
	})
}
