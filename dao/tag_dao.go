package dao

import (
	"strings"

	"gorm.io/gorm"

	"booru/model"
)

type TagDAO struct {
	db *gorm.DB
}

// NewTagDAO 创建一个新的 TagDAO 实例
func NewTagDAO(db *gorm.DB) *TagDAO {
	return &TagDAO{db: db}
}

// FindByExactNames resolves tags by exact name (case-insensitive) and
// returns them in the order the names were given. Unknown names are
// silently skipped.
func (d *TagDAO) FindByExactNames(names []string) ([]model.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var rows []model.Tag
	if err := d.db.Where("name IN ?", names).Find(&rows).Error; err != nil {
		return nil, err
	}
	byName := make(map[string]model.Tag, len(rows))
	for _, tag := range rows {
		byName[strings.ToLower(tag.Name)] = tag
	}
	tags := make([]model.Tag, 0, len(rows))
	for _, name := range names {
		if tag, ok := byName[strings.ToLower(name)]; ok {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}
