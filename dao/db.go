package dao

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"booru/internal/errs"
)

// Open connects to MySQL. Schema migrations are managed outside this core.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(mysqldriver.Open(dsn), &gorm.Config{TranslateError: true})
}

// wrapDuplicate converts driver-level unique-key violations into the
// domain's AlreadyExists error.
func wrapDuplicate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.ErrUserAlreadyExists
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return errs.ErrUserAlreadyExists
	}
	return err
}
