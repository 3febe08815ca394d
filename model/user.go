package model

import "time"

// Rank is an ordered privilege tier. The numeric value doubles as the
// comparison order: a higher value means more privileges.
type Rank int

const (
	RankAnonymous Rank = iota
	RankNobody
	RankRegular
	RankPower
	RankModerator
	RankAdministrator
)

// Avatar styles accepted by the account core.
const (
	AvatarGravatar = "gravatar"
	AvatarManual   = "manual"
)

// User 用户模型
type User struct {
	ID               uint64     `gorm:"primarykey" json:"id"`
	Name             string     `gorm:"uniqueIndex;not null;size:50" json:"name"`
	Email            string     `gorm:"size:200" json:"email"` // 空串表示未设置
	PasswordHash     string     `gorm:"not null;size:255" json:"-"`
	PasswordSalt     string     `gorm:"not null;size:64" json:"-"`
	PasswordRevision int        `gorm:"not null;default:0" json:"-"`
	Rank             Rank       `gorm:"not null" json:"rank"`
	AvatarStyle      string     `gorm:"not null;size:10" json:"avatar_style"`
	CreationTime     time.Time  `json:"creation_time"`
	LastLoginTime    *time.Time `json:"last_login_time"`

	// 冗余计数字段，由帖子/评论子系统维护
	CommentCount      int `gorm:"default:0" json:"comment_count"`
	UploadedPostCount int `gorm:"column:post_count;default:0" json:"uploaded_post_count"`
	FavoritePostCount int `gorm:"default:0" json:"favorite_post_count"`
	LikedPostCount    int `gorm:"default:0" json:"liked_post_count"`
	DislikedPostCount int `gorm:"default:0" json:"disliked_post_count"`

	// Version implements optimistic concurrency; the DAO compares and
	// increments it on every update.
	Version int `gorm:"not null;default:1" json:"version"`
}
