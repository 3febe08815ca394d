package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"booru/config"
	"booru/internal/errs"
	"booru/model"
)

// In-memory stand-ins for the repository and file-store contracts.

type fakeUserRepo struct {
	users  []*model.User
	nextID uint64
}

func (r *fakeUserRepo) Count() (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) FindByName(name string) (*model.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Name, name) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByNameOrEmail(nameOrEmail string) (*model.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Name, nameOrEmail) ||
			(u.Email != "" && strings.EqualFold(u.Email, nameOrEmail)) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(user *model.User) error {
	for _, u := range r.users {
		if strings.EqualFold(u.Name, user.Name) {
			return errs.ErrUserAlreadyExists
		}
	}
	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.users = append(r.users, &copied)
	return nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	for i, u := range r.users {
		if u.ID != user.ID {
			continue
		}
		if u.Version != user.Version {
			return errs.ErrVersionConflict
		}
		user.Version++
		copied := *user
		r.users[i] = &copied
		return nil
	}
	return errs.ErrUserNotFound
}

type fakeTagRepo struct {
	tags []model.Tag
}

func (r *fakeTagRepo) FindByExactNames(names []string) ([]model.Tag, error) {
	var out []model.Tag
	for _, name := range names {
		for _, tag := range r.tags {
			if strings.EqualFold(tag.Name, name) {
				out = append(out, tag)
				break
			}
		}
	}
	return out, nil
}

type fakeBlocklistRepo struct {
	entries []model.BlocklistEntry
	tags    map[uint64]model.Tag // tag id -> tag, for TagsByUser
}

func (r *fakeBlocklistRepo) ListByUser(userID uint64) ([]model.BlocklistEntry, error) {
	var out []model.BlocklistEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TagID < out[j].TagID })
	return out, nil
}

func (r *fakeBlocklistRepo) TagsByUser(userID uint64) ([]model.Tag, error) {
	entries, _ := r.ListByUser(userID)
	var out []model.Tag
	for _, e := range entries {
		if tag, ok := r.tags[e.TagID]; ok {
			out = append(out, tag)
		}
	}
	return out, nil
}

func (r *fakeBlocklistRepo) Add(entry model.BlocklistEntry) error {
	for _, e := range r.entries {
		if e.UserID == entry.UserID && e.TagID == entry.TagID {
			return fmt.Errorf("duplicate blocklist entry (%d, %d)", entry.UserID, entry.TagID)
		}
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeBlocklistRepo) Remove(userID, tagID uint64) error {
	for i, e := range r.entries {
		if e.UserID == userID && e.TagID == tagID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeBlocklistRepo) DeleteByUser(userID uint64) error {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	r.entries = kept
	return nil
}

func (r *fakeBlocklistRepo) DeleteByTag(tagID uint64) error {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.TagID != tagID {
			kept = append(kept, e)
		}
	}
	r.entries = kept
	return nil
}

type fakeFileStore struct {
	files map[string][]byte
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{files: map[string][]byte{}}
}

func (s *fakeFileStore) Has(path string) (bool, error) {
	_, ok := s.files[path]
	return ok, nil
}

func (s *fakeFileStore) Move(src, dst string) error {
	content, ok := s.files[src]
	if !ok {
		return fmt.Errorf("no file at %s", src)
	}
	delete(s.files, src)
	s.files[dst] = content
	return nil
}

func (s *fakeFileStore) Save(path string, content []byte) error {
	s.files[path] = content
	return nil
}

type fakeSessions struct {
	purged []uint64
}

func (s *fakeSessions) PurgeUser(userID uint64) error {
	s.purged = append(s.purged, userID)
	return nil
}

type testEnv struct {
	svc       *UserService
	cfg       *config.Config
	users     *fakeUserRepo
	tags      *fakeTagRepo
	blocklist *fakeBlocklistRepo
	files     *fakeFileStore
	sessions  *fakeSessions
}

func newTestEnv() *testEnv {
	env := &testEnv{
		cfg:       config.Default(),
		users:     &fakeUserRepo{},
		tags:      &fakeTagRepo{},
		blocklist: &fakeBlocklistRepo{tags: map[uint64]model.Tag{}},
		files:     newFakeFileStore(),
		sessions:  &fakeSessions{},
	}
	env.svc = NewUserService(env.cfg, env.users, env.tags, env.blocklist, env.files, env.sessions)
	env.svc.now = func() time.Time {
		return time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	}
	return env
}
