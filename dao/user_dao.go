package dao

import (
	"errors"

	"gorm.io/gorm"

	"booru/internal/errs"
	"booru/model"
)

type UserDAO struct {
	db *gorm.DB
}

// NewUserDAO 创建一个新的 UserDAO 实例
func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// Count returns the number of existing accounts.
func (d *UserDAO) Count() (int64, error) {
	var count int64
	err := d.db.Model(&model.User{}).Count(&count).Error
	return count, err
}

// FindByName 根据用户名查询用户（大小写不敏感）；未找到返回 nil, nil
func (d *UserDAO) FindByName(name string) (*model.User, error) {
	var user model.User
	err := d.db.Where("LOWER(name) = LOWER(?)", name).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByNameOrEmail matches either column case-insensitively; nil, nil when
// no account matches.
func (d *UserDAO) FindByNameOrEmail(nameOrEmail string) (*model.User, error) {
	var user model.User
	err := d.db.
		Where("LOWER(name) = LOWER(?) OR LOWER(email) = LOWER(?)", nameOrEmail, nameOrEmail).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user; unique-key violations surface as AlreadyExists.
func (d *UserDAO) Create(user *model.User) error {
	return wrapDuplicate(d.db.Create(user).Error)
}

// Update persists the user with a compare-and-swap on the version column.
// A stale version means a concurrent request won; the caller gets a
// conflict error and no row is touched.
func (d *UserDAO) Update(user *model.User) error {
	current := user.Version
	user.Version = current + 1
	res := d.db.Model(&model.User{}).
		Where("id = ? AND version = ?", user.ID, current).
		Select("*").Omit("id").
		Updates(user)
	if res.Error != nil {
		user.Version = current
		return wrapDuplicate(res.Error)
	}
	if res.RowsAffected == 0 {
		user.Version = current
		return errs.ErrVersionConflict
	}
	return nil
}

// Delete removes the user row; blocklist rows cascade at the database level.
func (d *UserDAO) Delete(userID uint64) error {
	return d.db.Delete(&model.User{}, userID).Error
}
