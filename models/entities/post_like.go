package entities

import "time"

// PostLike 点赞实体
// - 表名: post_likes
// - 唯一性: (PostID, GuestID) 的唯一索引是幂等性的最终保障。
//   服务层虽然先做存在性检查，但两个并发点赞请求的判定必须落在
//   数据库约束上——check-then-act 在应用层天然有竞态。
type PostLike struct {
	ID uint64 `gorm:"primaryKey"`

	PostID uint64 `gorm:"not null;uniqueIndex:uk_post_guest,priority:1"`

	// GuestID 是客户端自带的匿名身份串，不做任何认证，仅用于去重
	GuestID string `gorm:"type:varchar(64);not null;uniqueIndex:uk_post_guest,priority:2"`

	CreatedAt time.Time
}
