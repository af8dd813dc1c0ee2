package entities

import "time"

// Post 帖子实体
// - 使用场景: 匿名帖子的聚合根，评论与点赞均通过 PostID 挂载在其之下
// - 表名: posts (GORM 默认使用结构体名复数形式)
// - 注意: 帖子删除是硬删除（连带评论/点赞/标签在同一事务中清理），
//   因此这里刻意不嵌入 gorm.DeletedAt，避免 GORM 的软删除语义介入。
type Post struct {
	// 主键，创建时由数据库分配，之后不可变
	ID uint64 `gorm:"primaryKey"`

	// 标题，必填，1~200 个字符
	// - 类型: varchar(200)，与 DTO 校验上限一致
	Title string `gorm:"type:varchar(200);not null"`

	// 内容，支持多行文本，存储为 TEXT 类型，非空
	Content string `gorm:"type:text;not null"`

	// 作者昵称，1~50 个字符
	// - 匿名场景下这只是访客自报的展示名，不关联任何账号体系
	// - 建立索引以支持按作者搜索
	Author string `gorm:"type:varchar(50);not null;index"`

	// 密码哈希（bcrypt），更新/删除/改密等可被重放的变更操作凭此授权
	// - 永远只存哈希，原始密码不落库
	Password string `gorm:"type:varchar(255);not null"`

	// 浏览量，只增不减；每次详情读取通过原子 UPDATE 加一，
	// 并发读取各自独立计数，不做去重
	ViewCount int64 `gorm:"not null;default:0"`

	// 创建时间，建立索引以支持 latest 排序与时间断点
	CreatedAt time.Time `gorm:"index"`

	// 更新时间，不变式: UpdatedAt >= CreatedAt；
	// 浏览量自增走 UpdateColumn，刻意不触碰该字段
	UpdatedAt time.Time
}
