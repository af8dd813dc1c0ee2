package myErrors

import "errors"

// 领域错误分类。
// 约定：这些错误都是业务上可预期的结果，服务层不重试、不吞掉，
// 由控制器层统一映射为对应的 HTTP 状态码（404/403/409/400）。
var (
	// ErrPostNotFound 帖子不存在。存在性检查永远先于密码校验执行。
	ErrPostNotFound = errors.New("post not found")

	// ErrCommentNotFound 评论不存在
	ErrCommentNotFound = errors.New("comment not found")

	// ErrPasswordMismatch 密码校验失败，仅在目标实体确认存在后返回
	ErrPasswordMismatch = errors.New("password mismatch")

	// ErrAlreadyLiked 同一 (postID, guestID) 已存在点赞记录
	ErrAlreadyLiked = errors.New("like: already liked")

	// ErrNotLiked 取消点赞时点赞记录不存在
	ErrNotLiked = errors.New("like: not liked")

	// ErrNestedReplyNotAllowed 回复的目标本身已是回复（回复层级固定为一层）
	ErrNestedReplyNotAllowed = errors.New("comment: nested reply not allowed")
)

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")
