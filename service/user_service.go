package service

import (
	"fmt"
	"strings"
	"time"

	"booru/config"
	"booru/internal/auth"
	"booru/internal/errs"
	"booru/internal/images"
	"booru/internal/metrics"
	"booru/internal/storage"
	"booru/internal/validator"
	"booru/model"
)

// UserService implements the account domain rules: creation, credential and
// profile updates, rank assignment, avatar management and the tag
// blocklist. It mutates entities in memory; persistence happens through the
// repository contracts inside the caller's transaction scope.
type UserService struct {
	cfg       *config.Config
	users     UserRepository
	tags      TagRepository
	blocklist BlocklistRepository
	files     storage.FileStore
	session   SessionInvalidator // 可为 nil，表示无会话存储
	now       func() time.Time
}

// NewUserService 创建一个新的 UserService 实例
func NewUserService(
	cfg *config.Config,
	users UserRepository,
	tags TagRepository,
	blocklist BlocklistRepository,
	files storage.FileStore,
	session SessionInvalidator,
) *UserService {
	return &UserService{
		cfg:       cfg,
		users:     users,
		tags:      tags,
		blocklist: blocklist,
		files:     files,
		session:   session,
		now:       time.Now,
	}
}

// AvatarPath derives the storage path of a user's manual avatar.
func AvatarPath(name string) string {
	return "avatars/" + strings.ToLower(name) + ".png"
}

// CreateUser builds a new account. Validation runs in name, password, email
// order so the most specific failure is reported first. The very first
// account is promoted to administrator; later accounts get the configured
// default rank. The entity is not persisted; call Save, and seed the
// blocklist explicitly via PlanBlocklist(user, nil).
func (s *UserService) CreateUser(name, password, email string) (*model.User, error) {
	user := &model.User{}
	if err := s.SetName(user, name); err != nil {
		metrics.IncUserOp("create", "invalid")
		return nil, err
	}
	if err := s.SetPassword(user, password); err != nil {
		metrics.IncUserOp("create", "invalid")
		return nil, err
	}
	if err := s.SetEmail(user, email); err != nil {
		metrics.IncUserOp("create", "invalid")
		return nil, err
	}
	count, err := s.users.Count()
	if err != nil {
		return nil, err
	}
	if count > 0 {
		rank, ok := auth.RankFromName(s.cfg.Users.DefaultRank)
		if !ok {
			return nil, fmt.Errorf("unknown default rank %q", s.cfg.Users.DefaultRank)
		}
		user.Rank = rank
	} else {
		user.Rank = model.RankAdministrator
	}
	user.CreationTime = s.now().UTC()
	user.AvatarStyle = model.AvatarGravatar
	metrics.IncUserOp("create", "success")
	return user, nil
}

// SetName validates and assigns a new name. If a manual avatar is stored
// under the old name's derived path it is relocated to the new one.
func (s *UserService) SetName(user *model.User, name string) error {
	if name == "" {
		return errs.Invalid("name", errs.ConstraintRequired, "name cannot be empty")
	}
	if len(name) > s.cfg.Users.NameMaxLength {
		return errs.Invalid("name", errs.ConstraintLength,
			"name is longer than %d characters", s.cfg.Users.NameMaxLength)
	}
	name = strings.TrimSpace(name)
	if !validator.MatchesPattern(name, s.cfg.Users.NameRegex) {
		return errs.Invalid("name", errs.ConstraintPattern,
			"name %q must match %q", name, s.cfg.Users.NameRegex)
	}
	other, err := s.users.FindByName(name)
	if err != nil {
		return err
	}
	if other != nil && other.ID != user.ID {
		return fmt.Errorf("user %q: %w", name, errs.ErrUserAlreadyExists)
	}
	if user.Name != "" {
		oldPath := AvatarPath(user.Name)
		stored, err := s.files.Has(oldPath)
		if err != nil {
			return err
		}
		if stored {
			if err := s.files.Move(oldPath, AvatarPath(name)); err != nil {
				return err
			}
		}
	}
	user.Name = name
	return nil
}

// SetPassword validates the plaintext, derives a fresh salt/hash pair and
// drops the user's live sessions.
func (s *UserService) SetPassword(user *model.User, password string) error {
	if password == "" {
		return errs.Invalid("password", errs.ConstraintRequired, "password cannot be empty")
	}
	if !validator.MatchesPattern(password, s.cfg.Users.PasswordRegex) {
		return errs.Invalid("password", errs.ConstraintPattern,
			"password must match %q", s.cfg.Users.PasswordRegex)
	}
	salt := auth.CreatePassword()
	hash, revision, err := auth.PasswordHash(salt, password)
	if err != nil {
		return err
	}
	user.PasswordSalt = salt
	user.PasswordHash = hash
	user.PasswordRevision = revision
	s.invalidateSessions(user)
	return nil
}

// SetEmail trims and validates; an empty string clears the email.
func (s *UserService) SetEmail(user *model.User, email string) error {
	email = strings.TrimSpace(email)
	if len(email) > s.cfg.Users.EmailMaxLength {
		return errs.Invalid("email", errs.ConstraintLength,
			"email is longer than %d characters", s.cfg.Users.EmailMaxLength)
	}
	if !validator.IsValidEmail(email) {
		return errs.Invalid("email", errs.ConstraintFormat, "email is invalid")
	}
	user.Email = email
	return nil
}

// SetRank assigns a rank by name. Sentinel ranks are rejected, and once any
// account exists the acting user cannot hand out a rank above their own.
// The first account is exempt: there is no rank to compare against yet.
func (s *UserService) SetRank(user *model.User, rankName string, actingUser *model.User) error {
	if rankName == "" {
		return errs.Invalid("rank", errs.ConstraintRequired, "rank cannot be empty")
	}
	rank, ok := auth.RankFromName(strings.TrimSpace(rankName))
	if !ok {
		return errs.Invalid("rank", errs.ConstraintOneOf,
			"rank can be either of %v", auth.RankNames)
	}
	if auth.IsSentinelRank(rank) {
		return errs.Invalid("rank", errs.ConstraintOneOf,
			"rank %q cannot be used", auth.RankName(rank))
	}
	count, err := s.users.Count()
	if err != nil {
		return err
	}
	if count > 0 && (actingUser == nil || actingUser.Rank < rank) {
		return errs.ErrNotAuthorized
	}
	user.Rank = rank
	return nil
}

// SetAvatar switches the avatar style. Manual style without content is only
// valid when an avatar file is already stored; with content, the image is
// decoded, fill-cropped to the configured dimensions and saved as PNG.
func (s *UserService) SetAvatar(user *model.User, style string, content []byte) error {
	switch style {
	case model.AvatarGravatar:
		user.AvatarStyle = model.AvatarGravatar
		return nil
	case model.AvatarManual:
		user.AvatarStyle = model.AvatarManual
		path := AvatarPath(user.Name)
		if len(content) == 0 {
			stored, err := s.files.Has(path)
			if err != nil {
				return err
			}
			if stored {
				return nil
			}
			return errs.Invalid("avatar", errs.ConstraintRequired, "avatar content missing")
		}
		thumb, err := images.ResizeFillPNG(content,
			s.cfg.Thumbnails.AvatarWidth, s.cfg.Thumbnails.AvatarHeight)
		if err != nil {
			metrics.IncAvatarUpload("invalid")
			return errs.Invalid("avatar", errs.ConstraintFormat, "avatar content is not a valid image")
		}
		if err := s.files.Save(path, thumb); err != nil {
			metrics.IncAvatarUpload("error")
			return err
		}
		metrics.IncAvatarUpload("success")
		return nil
	default:
		return errs.Invalid("avatarStyle", errs.ConstraintOneOf,
			"avatar style %q is invalid; valid styles: %v", style,
			[]string{model.AvatarGravatar, model.AvatarManual})
	}
}

// BumpLoginTime stamps the last-login time with the current time.
func (s *UserService) BumpLoginTime(user *model.User) {
	t := s.now().UTC()
	user.LastLoginTime = &t
}

// ResetPassword generates a fresh random password, applies it through the
// normal password path and returns the plaintext exactly once. The caller
// must deliver it out of band; it is never persisted.
func (s *UserService) ResetPassword(user *model.User) (string, error) {
	password := auth.CreatePassword()
	if err := s.SetPassword(user, password); err != nil {
		metrics.IncPasswordReset("error")
		return "", err
	}
	metrics.IncPasswordReset("success")
	return password, nil
}

// Save persists the user: insert on first save, otherwise an update guarded
// by the optimistic version counter.
func (s *UserService) Save(user *model.User) error {
	if user.ID == 0 {
		if user.Version == 0 {
			user.Version = 1
		}
		return s.users.Create(user)
	}
	return s.users.Update(user)
}

// TryGetByName 根据用户名查询用户；未找到返回 nil, nil
func (s *UserService) TryGetByName(name string) (*model.User, error) {
	return s.users.FindByName(name)
}

// GetByName resolves a user or fails with NotFound.
func (s *UserService) GetByName(name string) (*model.User, error) {
	user, err := s.users.FindByName(name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %q: %w", name, errs.ErrUserNotFound)
	}
	return user, nil
}

// GetByNameOrEmail resolves a user by either column or fails with NotFound.
func (s *UserService) GetByNameOrEmail(nameOrEmail string) (*model.User, error) {
	user, err := s.users.FindByNameOrEmail(nameOrEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %q: %w", nameOrEmail, errs.ErrUserNotFound)
	}
	return user, nil
}

// Count returns the number of existing accounts.
func (s *UserService) Count() (int64, error) {
	return s.users.Count()
}

// invalidateSessions is best-effort: the hash change alone already makes
// credential re-auth fail, purging only shortens the window.
func (s *UserService) invalidateSessions(user *model.User) {
	if s.session == nil || user.ID == 0 {
		return
	}
	_ = s.session.PurgeUser(user.ID)
}
