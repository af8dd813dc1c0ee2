package dto

// CreatePostRequest 定义创建帖子的请求体
// - 校验规则与数据库列宽保持一致，超限直接在绑定阶段拒绝
type CreatePostRequest struct {
	// 帖子标题，必填，1~200 个字符
	Title string `json:"title" binding:"required,min=1,max=200"`

	// 帖子内容，必填，允许多行文本
	Content string `json:"content" binding:"required,min=1"`

	// 作者昵称，必填，1~50 个字符
	Author string `json:"author" binding:"required,min=1,max=50"`

	// 明文密码，至少 4 个字符；服务层哈希后入库，绝不回显
	Password string `json:"password" binding:"required,min=4"`

	// 话题标签，可选，至多 5 个，每个 1~30 个字符
	Hashtags []string `json:"hashtags" binding:"omitempty,max=5,dive,min=1,max=30"`
}

// UpdatePostRequest 定义更新帖子的请求体
// - 更新是全量替换语义: 标题、内容、标签一并提交；
//   省略 hashtags 字段等价于清空该帖的全部标签
// - 密码为当前密码，仅用于鉴权，不会被修改
type UpdatePostRequest struct {
	Title    string   `json:"title" binding:"required,min=1,max=200"`
	Content  string   `json:"content" binding:"required,min=1"`
	Password string   `json:"password" binding:"required"`
	Hashtags []string `json:"hashtags" binding:"omitempty,max=5,dive,min=1,max=30"`
}

// ChangePostPasswordRequest 定义修改帖子密码的请求体
// - 旧密码只需非空（真正的判定交给哈希比对），新密码必须满足长度下限
type ChangePostPasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=4"`
}

// DeletePostRequest 定义删除帖子的请求体
// - 删除属于带副作用的操作，密码放在 body 而非 query，避免进访问日志
type DeletePostRequest struct {
	Password string `json:"password" binding:"required"`
}
