// Package events 定义帖子生命周期事件的载荷结构。
// 事件经 Kafka 发往下游（搜索索引、审计等），字段一经发布不可随意更名。
package events

import "time"

// PostData 事件中携带的帖子快照
type PostData struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Hashtags  []string  `json:"hashtags"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostCreatedEvent 帖子创建事件
// - EventID 为 UUID，供下游做消费幂等
type PostCreatedEvent struct {
	EventID   string    `json:"eventId"`
	Timestamp time.Time `json:"timestamp"`
	Post      PostData  `json:"post"`
}

// PostDeletedEvent 帖子删除事件
// - 删除是硬删除，事件里只带 ID，下游据此清理各自的副本
type PostDeletedEvent struct {
	EventID   string    `json:"eventId"`
	Timestamp time.Time `json:"timestamp"`
	PostID    uint64    `json:"postId"`
}
