package vo

import (
	"time"

	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/models/entities"
)

// CommentVO 评论视图对象（根评论与回复共用）
// - 掩码规则: 已软删除的评论只有内容被替换为占位文案，
//   id、parentId、作者与创建时间原样保留，条目本身留在列表中，
//   回复区的上下文不会因此断裂
type CommentVO struct {
	ID         uint64    `json:"id"`
	PostID     uint64    `json:"postId"`
	ParentID   *uint64   `json:"parentId,omitempty"`
	Author     string    `json:"author"`
	Content    string    `json:"content"`
	Deleted    bool      `json:"deleted"`
	ReplyCount int64     `json:"replyCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CommentPageVO 根评论分页视图对象
// - HasMore 表示当前页之后是否还有数据: (page+1)*size < totalElements
type CommentPageVO struct {
	Comments      []CommentVO `json:"comments"`
	Page          int         `json:"page"`
	Size          int         `json:"size"`
	TotalElements int64       `json:"totalElements"`
	HasMore       bool        `json:"hasMore"`
}

// ReplyPageVO 回复分页视图对象，按创建时间正序
type ReplyPageVO struct {
	Replies       []CommentVO `json:"replies"`
	Page          int         `json:"page"`
	Size          int         `json:"size"`
	TotalElements int64       `json:"totalElements"`
	HasMore       bool        `json:"hasMore"`
}

// NewCommentVO 由实体组装评论视图对象，软删除掩码在此统一收口
func NewCommentVO(comment *entities.Comment, replyCount int64) CommentVO {
	v := CommentVO{
		ID:         comment.ID,
		PostID:     comment.PostID,
		ParentID:   comment.ParentID,
		Author:     comment.Author,
		Content:    comment.Content,
		Deleted:    comment.Deleted,
		ReplyCount: replyCount,
		CreatedAt:  comment.CreatedAt,
	}
	if comment.Deleted {
		v.Content = constant.DeletedCommentContent
	}
	return v
}

// HasMorePages 统一的"是否还有下一页"判定
func HasMorePages(page, size int, totalElements int64) bool {
	return int64(page+1)*int64(size) < totalElements
}
