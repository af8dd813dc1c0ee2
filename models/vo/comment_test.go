package vo

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/models/entities"
)

func TestNewCommentVO_Masking(t *testing.T) {
	base := &entities.Comment{
		ID:        1,
		PostID:    10,
		Author:    "张三",
		Content:   "原始内容",
		CreatedAt: time.Now(),
	}

	v := NewCommentVO(base, 2)
	assert.Equal(t, "张三", v.Author)
	assert.Equal(t, "原始内容", v.Content)
	assert.False(t, v.Deleted)
	assert.Equal(t, int64(2), v.ReplyCount)

	base.Deleted = true
	v = NewCommentVO(base, 2)
	assert.True(t, v.Deleted)
	assert.Equal(t, constant.DeletedCommentContent, v.Content)
	// 掩码只针对内容，作者与结构字段原样保留
	assert.Equal(t, "张三", v.Author)
	assert.Equal(t, uint64(1), v.ID)
	assert.Equal(t, base.CreatedAt, v.CreatedAt)
	assert.Equal(t, int64(2), v.ReplyCount)
}

// replyCount 为零时也要出现在 JSON 里，删掉唯一的回复后前端能看到归零
func TestCommentVO_ReplyCountZeroSerialized(t *testing.T) {
	v := NewCommentVO(&entities.Comment{ID: 1, PostID: 10, Author: "a", Content: "c"}, 0)
	data, err := json.Marshal(v)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"replyCount":0`)
}

func TestHasMorePages(t *testing.T) {
	// 总数刚好整除时最后一页之后没有更多
	assert.True(t, HasMorePages(0, 5, 7))
	assert.False(t, HasMorePages(1, 5, 7))
	assert.False(t, HasMorePages(0, 5, 5))
	assert.False(t, HasMorePages(0, 5, 0))
	assert.True(t, HasMorePages(1, 10, 25))
	assert.False(t, HasMorePages(2, 10, 25))
}
