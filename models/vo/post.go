package vo

import (
	"time"

	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/models/entities"
)

// PostVO 帖子基础视图对象（创建/更新的返回体）
// - 密码哈希永远不出现在任何视图对象中
type PostVO struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Hashtags  []string  `json:"hashtags"`
	ViewCount int64     `json:"viewCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostDetailVO 帖子详情视图对象
// - ViewCount 为本次读取自增之后的值
// - Liked 表示当前访客是否已点赞，请求未携带访客标识时恒为 false
// - Comments 为首页根评论（第 0 页，固定页大小），完整评论走评论分页接口
type PostDetailVO struct {
	PostVO
	LikeCount    int64         `json:"likeCount"`
	Liked        bool          `json:"liked"`
	CommentCount int64         `json:"commentCount"`
	Comments     CommentPageVO `json:"comments"`
}

// PostSummaryVO 列表页中的帖子摘要
// - 不含正文全文，Excerpt 为截断后的内容摘要
// - IsNew 表示创建时间距今不足三天，由读取时刻现算，不落库
type PostSummaryVO struct {
	ID           uint64    `json:"id"`
	Title        string    `json:"title"`
	Excerpt      string    `json:"excerpt"`
	Author       string    `json:"author"`
	Hashtags     []string  `json:"hashtags"`
	ViewCount    int64     `json:"viewCount"`
	LikeCount    int64     `json:"likeCount"`
	CommentCount int64     `json:"commentCount"`
	IsNew        bool      `json:"isNew"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PostListPageVO 帖子列表分页视图对象
// - TotalElements/TotalPages 是当前过滤条件下的命中统计
// - TotalPostCount/TotalCommentCount 是全站总量，与过滤条件无关，
//   搜索结果为空时依然返回全站数字
type PostListPageVO struct {
	Posts             []PostSummaryVO `json:"posts"`
	Page              int             `json:"page"`
	Size              int             `json:"size"`
	TotalElements     int64           `json:"totalElements"`
	TotalPages        int64           `json:"totalPages"`
	TotalPostCount    int64           `json:"totalPostCount"`
	TotalCommentCount int64           `json:"totalCommentCount"`
}

// 列表摘要的内容截断长度（按 rune 计）
const excerptMaxLen = 100

// NewPostVO 由实体和标签列表组装基础视图对象
func NewPostVO(post *entities.Post, hashtags []string) PostVO {
	if hashtags == nil {
		hashtags = []string{}
	}
	return PostVO{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Author:    post.Author,
		Hashtags:  hashtags,
		ViewCount: post.ViewCount,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// NewPostSummaryVO 组装列表摘要
// - now 由调用方传入，保证同一页内 isNew 的判定基准一致
func NewPostSummaryVO(post *entities.Post, hashtags []string, likeCount, commentCount int64, now time.Time) PostSummaryVO {
	if hashtags == nil {
		hashtags = []string{}
	}
	return PostSummaryVO{
		ID:           post.ID,
		Title:        post.Title,
		Excerpt:      truncateRunes(post.Content, excerptMaxLen),
		Author:       post.Author,
		Hashtags:     hashtags,
		ViewCount:    post.ViewCount,
		LikeCount:    likeCount,
		CommentCount: commentCount,
		IsNew:        now.Sub(post.CreatedAt) < constant.PostIsNewWithinDays*24*time.Hour,
		CreatedAt:    post.CreatedAt,
	}
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
