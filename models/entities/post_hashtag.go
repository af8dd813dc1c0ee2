package entities

// PostHashtag 帖子话题标签实体
// - 使用场景: 以单独的行存储帖子的有序标签（每帖 0~5 个，整体替换式更新）
// - 表名: post_hashtags
// - 设计意图: 标签搜索是精确匹配（"javascript" 不命中关键词 "java"），
//   用独立表 + hashtag 索引做 JOIN 等值查询，而不是在帖子行里存逗号串做 LIKE。
type PostHashtag struct {
	ID uint64 `gorm:"primaryKey"`

	// 所属帖子 ID，随帖子删除在同一事务中被清理
	PostID uint64 `gorm:"not null;index"`

	// 标签文本，1~30 个字符，建立索引支持精确匹配搜索
	Hashtag string `gorm:"type:varchar(30);not null;index"`

	// 标签在帖子内的展示顺序（客户端提交顺序）
	SortOrder int `gorm:"not null;default:0"`
}
