package service

import "booru/model"

// Collaborator contracts consumed by the account core. The dao package
// provides the gorm-backed implementations; tests substitute in-memory
// fakes.

// UserRepository is the persistence surface for user rows. Lookups return
// nil, nil when no account matches.
type UserRepository interface {
	Count() (int64, error)
	FindByName(name string) (*model.User, error)
	FindByNameOrEmail(nameOrEmail string) (*model.User, error)
	Create(user *model.User) error
	Update(user *model.User) error
}

// TagRepository resolves external tag entities by name.
type TagRepository interface {
	FindByExactNames(names []string) ([]model.Tag, error)
}

// BlocklistRepository persists (user, tag) blocklist rows. Reads are
// ordered by tag id so repeated reads of an unchanged blocklist are
// identical.
type BlocklistRepository interface {
	ListByUser(userID uint64) ([]model.BlocklistEntry, error)
	TagsByUser(userID uint64) ([]model.Tag, error)
	Add(entry model.BlocklistEntry) error
	Remove(userID, tagID uint64) error
	DeleteByUser(userID uint64) error
	DeleteByTag(tagID uint64) error
}

// SessionInvalidator drops a user's live sessions once their password hash
// changes. Implemented by auth.SessionManager.
type SessionInvalidator interface {
	PurgeUser(userID uint64) error
}
