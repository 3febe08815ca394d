package dao

import (
	"gorm.io/gorm"

	"booru/model"
)

type BlocklistDAO struct {
	db *gorm.DB
}

// NewBlocklistDAO 创建一个新的 BlocklistDAO 实例
func NewBlocklistDAO(db *gorm.DB) *BlocklistDAO {
	return &BlocklistDAO{db: db}
}

// ListByUser returns the user's blocklist entries ordered by tag id.
// Stable order matters: reconciliation diffs against this read.
func (d *BlocklistDAO) ListByUser(userID uint64) ([]model.BlocklistEntry, error) {
	var entries []model.BlocklistEntry
	err := d.db.
		Where("user_id = ?", userID).
		Order("tag_id").
		Find(&entries).Error
	return entries, err
}

// TagsByUser resolves the user's blocklisted tags in one joined query,
// ordered by tag id.
func (d *BlocklistDAO) TagsByUser(userID uint64) ([]model.Tag, error) {
	var tags []model.Tag
	err := d.db.Model(&model.Tag{}).
		Joins("JOIN blocklist_entries ON blocklist_entries.tag_id = tags.id").
		Where("blocklist_entries.user_id = ?", userID).
		Order("tags.id").
		Find(&tags).Error
	return tags, err
}

// Add inserts one blocklist row.
func (d *BlocklistDAO) Add(entry model.BlocklistEntry) error {
	return d.db.Create(&entry).Error
}

// Remove deletes one (user, tag) row.
func (d *BlocklistDAO) Remove(userID, tagID uint64) error {
	return d.db.
		Where("user_id = ? AND tag_id = ?", userID, tagID).
		Delete(&model.BlocklistEntry{}).Error
}

// DeleteByUser drops every row owned by the user (user destruction).
func (d *BlocklistDAO) DeleteByUser(userID uint64) error {
	return d.db.Where("user_id = ?", userID).Delete(&model.BlocklistEntry{}).Error
}

// DeleteByTag drops every row referencing the tag (tag destruction).
func (d *BlocklistDAO) DeleteByTag(tagID uint64) error {
	return d.db.Where("tag_id = ?", tagID).Delete(&model.BlocklistEntry{}).Error
}
