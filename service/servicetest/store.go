// Package servicetest provides an in-memory implementation of the
// service store, with the same compare-and-set and uniqueness rules
// as the database.
package servicetest

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hicampus/hicampus/errs"
	"github.com/hicampus/hicampus/types"
)

type Store struct {
	// PingErr is returned by Ping.
	PingErr error

	mu                 sync.Mutex
	lastID             int64
	users              map[int64]types.User
	passwordHashes     map[int64]string
	helperLanguages    map[int64][]string
	departmentColleges map[int64]int64
	requests           map[int64]types.MatchRequest
	matches            map[int64]types.Match
	conversations      map[int64]types.Conversation
	participants       map[int64][]types.Participant
	messages           map[int64][]types.Message
	boards             map[int64]types.Board
	posts              []types.Post
	helperFilters      []types.HelperFilter
}

func NewStore() *Store {
	return &Store{
		users:              map[int64]types.User{},
		passwordHashes:     map[int64]string{},
		helperLanguages:    map[int64][]string{},
		departmentColleges: map[int64]int64{},
		requests:           map[int64]types.MatchRequest{},
		matches:            map[int64]types.Match{},
		conversations:      map[int64]types.Conversation{},
		participants:       map[int64][]types.Participant{},
		messages:           map[int64][]types.Message{},
		boards:             map[int64]types.Board{},
	}
}

func (s *Store) nextID() int64 {
	s.lastID++
	return s.lastID
}

// AddDepartment registers a department under collegeID and returns its id.
func (s *Store) AddDepartment(collegeID int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID()
	s.departmentColleges[id] = collegeID
	return id
}

func (s *Store) AddBoard(schoolID int64, name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID()
	s.boards[id] = types.Board{ID: id, SchoolID: schoolID, Name: name}
	return id
}

// AddUser stores u as is, assigning it an id.
func (s *Store) AddUser(u types.User, helperLanguages ...string) types.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.nextID()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	s.users[u.ID] = u
	s.helperLanguages[u.ID] = helperLanguages
	return u
}

// HelperFilters returns every filter Helpers was called with.
func (s *Store) HelperFilters() []types.HelperFilter {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.helperFilters)
}

// Counts reports how many matches, conversations and participants exist.
func (s *Store) Counts() (matches, conversations, participants int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, pp := range s.participants {
		participants += len(pp)
	}
	return len(s.matches), len(s.conversations), participants
}

func (s *Store) Ping(ctx context.Context) error {
	return s.PingErr
}

func (s *Store) CreateUser(ctx context.Context, in types.Register, passwordHash string) (types.Created, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == in.Email {
			return types.Created{}, errs.NewAlreadyExistsError("email", "email already registered")
		}
	}

	now := time.Now()
	u := types.User{
		ID:              s.nextID(),
		Email:           in.Email,
		Nickname:        in.Nickname,
		Realname:        in.Realname,
		Gender:          in.Gender,
		MainLanguage:    in.MainLanguage,
		NationalityISO2: in.NationalityISO2,
		SchoolID:        in.SchoolID,
		DepartmentID:    in.DepartmentID,
		EnrollmentYear:  in.EnrollmentYear,
		IsHelper:        in.IsHelper,
		CreatedAt:       now,
	}
	s.users[u.ID] = u
	s.passwordHashes[u.ID] = passwordHash
	s.helperLanguages[u.ID] = in.HelperLanguages

	return types.Created{ID: u.ID, CreatedAt: now}, nil
}

func (s *Store) User(ctx context.Context, userID int64) (types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return u, errs.NewNotFoundError("user not found")
	}
	return u, nil
}

func (s *Store) CredentialsByEmail(ctx context.Context, email string) (types.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return types.Credentials{UserID: u.ID, PasswordHash: s.passwordHashes[u.ID]}, nil
		}
	}
	return types.Credentials{}, errs.NewNotFoundError("user not found")
}

func (s *Store) Helpers(ctx context.Context, in types.HelperFilter) ([]types.UserPreview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.helperFilters = append(s.helperFilters, in)

	var helpers []types.User
	for _, u := range s.users {
		if !u.IsHelper {
			continue
		}
		if in.Language != nil && !slices.Contains(s.helperLanguages[u.ID], *in.Language) {
			continue
		}
		if in.Gender != nil && u.Gender != *in.Gender {
			continue
		}
		if in.CollegeID != nil && s.departmentColleges[u.DepartmentID] != *in.CollegeID {
			continue
		}
		helpers = append(helpers, u)
	}

	slices.SortFunc(helpers, func(a, b types.User) int {
		return cmp.Compare(a.ID, b.ID)
	})

	out := []types.UserPreview{}
	for _, u := range helpers {
		if uint(len(out)) == in.Limit {
			break
		}
		out = append(out, types.UserPreview{ID: u.ID, Nickname: u.Nickname})
	}
	return out, nil
}

func (s *Store) CreateMatchRequest(ctx context.Context, in types.CreateMatchRequest) (types.MatchRequestCreated, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.requests {
		if r.RequesterUserID == in.LoggedInUserID() && r.Status == types.MatchRequestStatusPending {
			return types.MatchRequestCreated{}, errs.NewAlreadyExistsError("", "you already have a pending match request")
		}
	}

	now := time.Now()
	r := types.MatchRequest{
		ID:                 s.nextID(),
		RequesterUserID:    in.LoggedInUserID(),
		PreferredCollegeID: in.PreferredCollegeID,
		PreferredGender:    in.PreferredGender,
		Notes:              in.Notes,
		Status:             types.MatchRequestStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	s.requests[r.ID] = r

	return types.MatchRequestCreated{ID: r.ID, Status: r.Status}, nil
}

func (s *Store) MatchRequest(ctx context.Context, requestID int64) (types.MatchRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[requestID]
	if !ok {
		return r, errs.NewNotFoundError("match request not found")
	}
	return r, nil
}

func (s *Store) MatchRequests(ctx context.Context, in types.ListMatchRequests) ([]types.MatchRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []types.MatchRequest{}
	for _, r := range s.requests {
		if r.RequesterUserID == in.LoggedInUserID() {
			out = append(out, r)
		}
	}

	slices.SortFunc(out, func(a, b types.MatchRequest) int {
		return cmp.Compare(b.ID, a.ID)
	})

	if len(out) > types.MatchRequestsLimit {
		out = out[:types.MatchRequestsLimit]
	}
	return out, nil
}

func (s *Store) UpdateMatchRequest(ctx context.Context, in types.UpdateMatchRequest) (types.MatchRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.updateMatchRequest(in)
}

func (s *Store) updateMatchRequest(in types.UpdateMatchRequest) (types.MatchRequest, error) {
	r, ok := s.requests[in.RequestID]
	if !ok {
		return r, errs.NewNotFoundError("match request not found")
	}

	from := in.To.SourceStatuses()
	if !slices.Contains(from, r.Status) {
		names := make([]string, len(from))
		for i, st := range from {
			names[i] = string(st)
		}
		return types.MatchRequest{}, errs.NewFailedPreconditionError("match request must be " + strings.Join(names, " or "))
	}

	r.Status = in.To
	if in.OfferedToUserID != nil {
		r.OfferedToUserID = in.OfferedToUserID
	}
	r.UpdatedAt = time.Now()
	s.requests[r.ID] = r

	return r, nil
}

func (s *Store) AcceptMatchRequest(ctx context.Context, in types.AcceptMatch) (types.Accepted, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before, ok := s.requests[in.RequestID]
	if !ok {
		return types.Accepted{}, errs.NewNotFoundError("match request not found")
	}

	r, err := s.updateMatchRequest(types.UpdateMatchRequest{
		RequestID: in.RequestID,
		To:        types.MatchRequestStatusAccepted,
	})
	if err != nil {
		return types.Accepted{}, err
	}

	if err := in.MentorError(r.OfferedToUserID); err != nil {
		s.requests[before.ID] = before
		return types.Accepted{}, err
	}

	now := time.Now()
	m := types.Match{
		ID:           s.nextID(),
		MentorUserID: in.MentorUserID,
		MenteeUserID: r.RequesterUserID,
		SchoolID:     s.users[r.RequesterUserID].SchoolID,
		RequestID:    r.ID,
		Status:       types.MatchStatusActive,
		StartedAt:    now,
	}
	s.matches[m.ID] = m

	c := types.Conversation{ID: s.nextID(), MatchID: m.ID, CreatedAt: now}
	s.conversations[c.ID] = c

	s.participants[c.ID] = []types.Participant{
		{ID: s.nextID(), ConversationID: c.ID, UserID: m.MentorUserID},
		{ID: s.nextID(), ConversationID: c.ID, UserID: m.MenteeUserID},
	}

	return types.Accepted{MatchID: m.ID, ConversationID: c.ID}, nil
}

func (s *Store) participant(conversationID, userID int64) (int, bool) {
	for i, p := range s.participants[conversationID] {
		if p.UserID == userID {
			return i, true
		}
	}
	return 0, false
}

func (s *Store) Conversations(ctx context.Context, in types.ListConversations) ([]types.ConversationSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []types.ConversationSummary{}
	for id, pp := range s.participants {
		i, ok := s.participant(id, in.LoggedInUserID())
		if !ok {
			continue
		}

		other := pp[1-i]
		c := s.conversations[id]
		out = append(out, types.ConversationSummary{
			ID:         c.ID,
			MatchID:    c.MatchID,
			CreatedAt:  c.CreatedAt,
			LastReadAt: pp[i].LastReadAt,
			OtherUser: types.UserPreview{
				ID:       other.UserID,
				Nickname: s.users[other.UserID].Nickname,
			},
		})
	}

	slices.SortFunc(out, func(a, b types.ConversationSummary) int {
		return cmp.Compare(b.ID, a.ID)
	})
	return out, nil
}

func (s *Store) CreateMessage(ctx context.Context, in types.SendMessage) (types.MessageCreated, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.participant(in.ConversationID, in.LoggedInUserID()); !ok {
		return types.MessageCreated{}, errs.NewPermissionDeniedError("you are not a participant of this conversation")
	}

	m := types.Message{
		ID:             s.nextID(),
		ConversationID: in.ConversationID,
		SenderUserID:   in.LoggedInUserID(),
		Content:        in.Content,
		CreatedAt:      time.Now(),
	}
	s.messages[in.ConversationID] = append(s.messages[in.ConversationID], m)

	return types.MessageCreated{MessageID: m.ID, CreatedAt: m.CreatedAt}, nil
}

func (s *Store) Messages(ctx context.Context, in types.ListMessages) ([]types.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.participant(in.ConversationID, in.LoggedInUserID())
	if !ok {
		return nil, errs.NewPermissionDeniedError("you are not a participant of this conversation")
	}

	now := time.Now()
	s.participants[in.ConversationID][i].LastReadAt = &now

	out := []types.Message{}
	out = append(out, s.messages[in.ConversationID]...)
	return out, nil
}

func (s *Store) Posts(ctx context.Context, in types.ListPosts) ([]types.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.boards[in.BoardID]; !ok {
		return nil, errs.NewNotFoundError("board not found")
	}

	out := []types.Post{}
	for _, p := range slices.Backward(s.posts) {
		if p.BoardID != in.BoardID {
			continue
		}
		if p.IsAnonymous {
			p.UserID = nil
			p.Nickname = types.AnonymousAuthor
		}
		out = append(out, p)
		if len(out) == types.PostsLimit {
			break
		}
	}
	return out, nil
}

func (s *Store) CreatePost(ctx context.Context, in types.CreatePost) (types.Created, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.boards[in.BoardID]; !ok {
		return types.Created{}, errs.NewNotFoundError("board not found")
	}

	now := time.Now()
	userID := in.LoggedInUserID()
	lang := in.OriginalLang()
	p := types.Post{
		ID:           s.nextID(),
		BoardID:      in.BoardID,
		UserID:       &userID,
		Nickname:     s.users[userID].Nickname,
		Title:        in.Title,
		Content:      in.Content,
		OriginalLang: &lang,
		IsAnonymous:  in.IsAnonymous,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.posts = append(s.posts, p)

	return types.Created{ID: p.ID, CreatedAt: now}, nil
}
