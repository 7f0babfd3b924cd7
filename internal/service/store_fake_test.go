package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"jigarafy/backend/internal/events"
	"jigarafy/backend/internal/models"
	"jigarafy/backend/internal/repository"
)

// fakeStore is an in-memory repository.Store. Transaction snapshots the
// state and restores it when fn fails.
type fakeStore struct {
	mu       sync.Mutex
	users    map[uint]models.User
	friends  map[uint]map[uint]bool
	requests map[uint]models.FriendRequest
	nextID   uint

	// test hooks
	createRequestErr error
	addFriendshipErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[uint]models.User{},
		friends:  map[uint]map[uint]bool{},
		requests: map[uint]models.FriendRequest{},
	}
}

func (s *fakeStore) Users() repository.UserRepository                   { return fakeUsers{s} }
func (s *fakeStore) FriendRequests() repository.FriendRequestRepository { return fakeRequests{s} }

func (s *fakeStore) Transaction(_ context.Context, fn func(tx repository.Store) error) error {
	s.mu.Lock()
	users, friends, requests := s.snapshot()
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.users, s.friends, s.requests = users, friends, requests
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *fakeStore) snapshot() (map[uint]models.User, map[uint]map[uint]bool, map[uint]models.FriendRequest) {
	users := make(map[uint]models.User, len(s.users))
	for k, v := range s.users {
		users[k] = v
	}
	friends := make(map[uint]map[uint]bool, len(s.friends))
	for k, set := range s.friends {
		friends[k] = make(map[uint]bool, len(set))
		for f := range set {
			friends[k][f] = true
		}
	}
	requests := make(map[uint]models.FriendRequest, len(s.requests))
	for k, v := range s.requests {
		requests[k] = v
	}
	return users, friends, requests
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

// addUser seeds a user and returns its id.
func (s *fakeStore) addUser(name string, role models.Role) uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	s.users[id] = models.User{
		ID:          id,
		FullName:    name,
		Email:       name + "@example.com",
		Role:        role,
		IsOnboarded: true,
		CreatedAt:   time.Now().Add(time.Duration(id) * time.Second),
	}
	return id
}

func (s *fakeStore) friendIDs(userID uint) []uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := []uint{}
	for id := range s.friends[userID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *fakeStore) request(id uint) (models.FriendRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	return r, ok
}

type fakeUsers struct{ s *fakeStore }

func (f fakeUsers) Create(_ context.Context, user *models.User) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, u := range f.s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = f.s.id()
	user.CreatedAt = time.Now()
	f.s.users[user.ID] = *user
	return nil
}

func (f fakeUsers) FindByID(_ context.Context, id uint) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	u, ok := f.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, u := range f.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f fakeUsers) List(_ context.Context) ([]models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	users := []models.User{}
	for _, u := range f.s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

func (f fakeUsers) Update(_ context.Context, id uint, fields map[string]any) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	u, ok := f.s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	for column, value := range fields {
		switch column {
		case "full_name":
			u.FullName = value.(string)
		case "email":
			for otherID, other := range f.s.users {
				if otherID != id && other.Email == value.(string) {
					return repository.ErrDuplicate
				}
			}
			u.Email = value.(string)
		case "bio":
			u.Bio = value.(string)
		case "profile_pic":
			u.ProfilePic = value.(string)
		case "native_language":
			u.NativeLanguage = value.(string)
		case "learning_language":
			u.LearningLanguage = value.(string)
		case "location":
			u.Location = value.(string)
		case "role":
			u.Role = value.(models.Role)
		case "is_onboarded":
			u.IsOnboarded = value.(bool)
		}
	}
	f.s.users[id] = u
	return nil
}

func (f fakeUsers) Delete(_ context.Context, id uint) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.s.users, id)
	return nil
}

func (f fakeUsers) AreFriends(_ context.Context, userID, otherID uint) (bool, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return f.s.friends[userID][otherID], nil
}

func (f fakeUsers) AddFriendship(_ context.Context, userID, otherID uint) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.addFriendshipErr != nil {
		return f.s.addFriendshipErr
	}
	for _, link := range models.FriendshipPair(userID, otherID) {
		if f.s.friends[link.UserID] == nil {
			f.s.friends[link.UserID] = map[uint]bool{}
		}
		f.s.friends[link.UserID][link.FriendID] = true
	}
	return nil
}

func (f fakeUsers) ListFriends(_ context.Context, userID uint) ([]models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	friends := []models.User{}
	for id := range f.s.friends[userID] {
		friends = append(friends, f.s.users[id])
	}
	sort.Slice(friends, func(i, j int) bool { return friends[i].FullName < friends[j].FullName })
	return friends, nil
}

func (f fakeUsers) RemoveFromAllFriends(_ context.Context, userID uint) (int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var n int64
	n += int64(len(f.s.friends[userID]))
	delete(f.s.friends, userID)
	for _, set := range f.s.friends {
		if set[userID] {
			delete(set, userID)
			n++
		}
	}
	return n, nil
}

func (f fakeUsers) Recommended(_ context.Context, userID uint, page, limit int) (*repository.Page[models.User], error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	candidates := []models.User{}
	for id, u := range f.s.users {
		if id != userID && u.IsOnboarded && !f.s.friends[userID][id] {
			candidates = append(candidates, u)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].CreatedAt.After(candidates[j].CreatedAt) })

	start := (page - 1) * limit
	if start > len(candidates) {
		start = len(candidates)
	}
	end := start + limit
	if end > len(candidates) {
		end = len(candidates)
	}
	return &repository.Page[models.User]{Items: candidates[start:end], Total: int64(len(candidates))}, nil
}

func (f fakeUsers) CountByRole(_ context.Context) (map[models.Role]int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	counts := map[models.Role]int64{}
	for _, u := range f.s.users {
		counts[u.Role]++
	}
	return counts, nil
}

func (f fakeUsers) Recent(_ context.Context, n int) ([]models.User, error) {
	users, _ := f.List(context.Background())
	if len(users) > n {
		users = users[:n]
	}
	return users, nil
}

type fakeRequests struct{ s *fakeStore }

func (f fakeRequests) Create(_ context.Context, request *models.FriendRequest) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.createRequestErr != nil {
		return f.s.createRequestErr
	}
	for _, r := range f.s.requests {
		if r.Status == models.StatusPending && involves(r, request.SenderID) && involves(r, request.RecipientID) {
			return repository.ErrDuplicate
		}
	}
	request.ID = f.s.id()
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	f.s.requests[request.ID] = *request
	return nil
}

func (f fakeRequests) FindByIDForUpdate(_ context.Context, id uint) (*models.FriendRequest, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	r, ok := f.s.requests[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &r, nil
}

func (f fakeRequests) PendingBetween(_ context.Context, userID, otherID uint) (bool, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, r := range f.s.requests {
		if r.Status == models.StatusPending && involves(r, userID) && involves(r, otherID) {
			return true, nil
		}
	}
	return false, nil
}

func (f fakeRequests) MarkAccepted(_ context.Context, id uint) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	r, ok := f.s.requests[id]
	if !ok || r.Status != models.StatusPending {
		return repository.ErrNotFound
	}
	r.Status = models.StatusAccepted
	f.s.requests[id] = r
	return nil
}

func (f fakeRequests) list(match func(models.FriendRequest) bool) []models.FriendRequest {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	requests := []models.FriendRequest{}
	for _, r := range f.s.requests {
		if match(r) {
			r.Sender = f.s.users[r.SenderID]
			r.Recipient = f.s.users[r.RecipientID]
			requests = append(requests, r)
		}
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID > requests[j].ID })
	return requests
}

func (f fakeRequests) ListByRecipient(_ context.Context, userID uint, status models.FriendRequestStatus) ([]models.FriendRequest, error) {
	return f.list(func(r models.FriendRequest) bool { return r.RecipientID == userID && r.Status == status }), nil
}

func (f fakeRequests) ListBySender(_ context.Context, userID uint, status models.FriendRequestStatus) ([]models.FriendRequest, error) {
	return f.list(func(r models.FriendRequest) bool { return r.SenderID == userID && r.Status == status }), nil
}

func (f fakeRequests) DeleteForUser(_ context.Context, userID uint) (int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var n int64
	for id, r := range f.s.requests {
		if involves(r, userID) {
			delete(f.s.requests, id)
			n++
		}
	}
	return n, nil
}

func (f fakeRequests) CountByStatus(_ context.Context) (map[models.FriendRequestStatus]int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	counts := map[models.FriendRequestStatus]int64{}
	for _, r := range f.s.requests {
		counts[r.Status]++
	}
	return counts, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

// involves reports whether userID is either party of r.
func involves(r models.FriendRequest, userID uint) bool {
	return r.SenderID == userID || r.RecipientID == userID
}
