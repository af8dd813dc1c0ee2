package vo

// LikeVO 点赞操作的返回体
// - LikeCount 为本次操作生效后的总数
// - Liked 表示当前访客在操作后的点赞状态
type LikeVO struct {
	LikeCount int64 `json:"likeCount"`
	Liked     bool  `json:"liked"`
}
