package constant

// 帖子与评论的字段约束。
// 这些值与数据库列定义保持一致，DTO 的 binding 校验也引用同样的上限。
const (
	// PostTitleMaxLen 帖子标题最大长度
	PostTitleMaxLen = 200
	// PostAuthorMaxLen 作者昵称最大长度
	PostAuthorMaxLen = 50
	// PostHashtagMaxCount 单个帖子最多允许的话题标签数
	PostHashtagMaxCount = 5
	// PostHashtagMaxLen 单个话题标签最大长度
	PostHashtagMaxLen = 30
	// PasswordMinLen 帖子/评论密码的最小长度
	PasswordMinLen = 4
)

// DeletedCommentContent 软删除评论在所有读取路径上统一展示的占位内容。
// 行与作者信息仍保留在库中，仅 content 在出参时被替换；
// 配合出参中的 deleted 标记，前端可以区分"被删除"与"本来就是空内容"。
const DeletedCommentContent = "该评论已被删除"

// DetailCommentPageSize 帖子详情页内嵌的第一页根评论数量
const DetailCommentPageSize = 5

// DefaultCommentPageSize 评论/回复列表接口未指定 size 时的默认值
const DefaultCommentPageSize = 5

// PostIsNewWithinDays 帖子创建后多少天内在列表中标记为"新帖"
const PostIsNewWithinDays = 3
