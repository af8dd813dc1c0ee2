package entities

import "time"

// Comment 评论实体（根评论与回复共用一张表）
// - 表名: comments
// - 层级约束: ParentID 为空表示根评论；非空时必须指向一条根评论，
//   即被指向的那条评论自身的 ParentID 必须为空——回复深度固定为一层。
// - 生命周期: 单条删除是软删除（仅置 Deleted 标记，内容在读取路径被掩码）；
//   只有所属帖子被删除时才会按 PostID 批量硬删除。
type Comment struct {
	ID uint64 `gorm:"primaryKey"`

	// 所属帖子 ID，必填且不可变
	PostID uint64 `gorm:"not null;index"`

	// 父评论 ID；回复同时冗余 PostID，便于不遍历树直接按帖子分页/清理
	ParentID *uint64 `gorm:"index"`

	// 作者昵称，1~50 个字符
	Author string `gorm:"type:varchar(50);not null"`

	// 密码哈希（bcrypt）；删除评论校验的是评论自己的密码，而非帖子的
	Password string `gorm:"type:varchar(255);not null"`

	// 评论内容；软删除后库中原文保留，仅出参被替换为占位文案
	Content string `gorm:"type:text;not null"`

	// 软删除标记，默认 false；置位后不可逆（无恢复操作）
	Deleted bool `gorm:"not null;default:false"`

	// 创建时间，不可变；根评论按其倒序分页，回复按其正序分页
	CreatedAt time.Time `gorm:"index"`
}
