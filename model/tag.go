package model

// Tag 标签模型（标签子系统归属外部，这里只引用 id/name）
type Tag struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	Name     string `gorm:"uniqueIndex;not null;size:100" json:"name"`
	Category string `gorm:"size:50" json:"category"`
	Usages   int    `gorm:"default:0" json:"usages"`
}

// BlocklistEntry joins a user with a tag the user wants excluded from
// default listings. One row per (user, tag) pair; rows are removed when
// either side is destroyed or when reconciliation drops them.
type BlocklistEntry struct {
	UserID uint64 `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	TagID  uint64 `gorm:"primaryKey;autoIncrement:false" json:"tag_id"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Tag  Tag  `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"-"`
}
