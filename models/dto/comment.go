package dto

// CreateCommentRequest 定义创建根评论的请求体
type CreateCommentRequest struct {
	// 评论内容，必填
	Content string `json:"content" binding:"required,min=1"`

	// 作者昵称，必填，1~50 个字符
	Author string `json:"author" binding:"required,min=1,max=50"`

	// 明文密码，至少 4 个字符；删除本条评论时凭此鉴权
	Password string `json:"password" binding:"required,min=4"`
}

// CreateReplyRequest 定义创建回复的请求体
// - 父评论 ID 来自路径参数，不在 body 中
// - 对回复的回复会被服务层拒绝（层级固定为一层）
type CreateReplyRequest struct {
	Content  string `json:"content" binding:"required,min=1"`
	Author   string `json:"author" binding:"required,min=1,max=50"`
	Password string `json:"password" binding:"required,min=4"`
}

// DeleteCommentRequest 定义删除评论的请求体
// - 校验的是评论自身的密码，与所属帖子的密码无关
type DeleteCommentRequest struct {
	Password string `json:"password" binding:"required"`
}

// ListCommentsRequest 定义评论分页的查询参数
// - page 从 0 开始；size 省略时由服务层回填默认值
type ListCommentsRequest struct {
	Page int `form:"page" binding:"omitempty,gte=0"`
	Size int `form:"size" binding:"omitempty,gte=1,lte=50"`
}
