package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/service"
)

// CommentController 定义评论控制器的结构体
type CommentController struct {
	commentService service.CommentService
}

// NewCommentController 构造函数，用于创建 CommentController 实例
func NewCommentController(commentService service.CommentService) *CommentController {
	return &CommentController{
		commentService: commentService,
	}
}

// CreateComment 处理创建根评论的 HTTP 请求。
// @Summary      创建评论
// @Description  在帖子下发表根评论。密码用于日后删除本条评论的鉴权。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Param        post_id path uint64 true "帖子ID" minimum(1)
// @Param        request body dto.CreateCommentRequest true "评论内容"
// @Success      200 {object} vo.CommentResponseWrapper "创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/posts/{post_id}/comments [post]
func (ctrl *CommentController) CreateComment(c *gin.Context) {
	postID, ok := parseUintParam(c, "post_id")
	if !ok {
		return
	}
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	commentVO, err := ctrl.commentService.CreateComment(c.Request.Context(), postID, &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, commentVO, "评论创建成功")
}

// CreateReply 处理创建回复的 HTTP 请求。
// @Summary      回复评论
// @Description  在根评论下发表回复。回复只能挂在根评论下，对回复再回复会被拒绝。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Param        comment_id path uint64 true "根评论ID" minimum(1)
// @Param        request body dto.CreateReplyRequest true "回复内容"
// @Success      200 {object} vo.CommentResponseWrapper "创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数或目标是回复"
// @Failure      404 {object} vo.BaseResponseWrapper "评论不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/comments/{comment_id}/replies [post]
func (ctrl *CommentController) CreateReply(c *gin.Context) {
	commentID, ok := parseUintParam(c, "comment_id")
	if !ok {
		return
	}
	var req dto.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	replyVO, err := ctrl.commentService.CreateReply(c.Request.Context(), commentID, &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, replyVO, "回复创建成功")
}

// DeleteComment 处理删除评论的 HTTP 请求。
// @Summary      删除评论
// @Description  校验评论密码后软删除。评论在列表中保留位置，内容显示为占位文案。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Param        comment_id path uint64 true "评论ID" minimum(1)
// @Param        request body dto.DeleteCommentRequest true "评论密码"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      403 {object} vo.BaseResponseWrapper "密码不正确"
// @Failure      404 {object} vo.BaseResponseWrapper "评论不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/comments/{comment_id} [delete]
func (ctrl *CommentController) DeleteComment(c *gin.Context) {
	commentID, ok := parseUintParam(c, "comment_id")
	if !ok {
		return
	}
	var req dto.DeleteCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	if err := ctrl.commentService.DeleteComment(c.Request.Context(), commentID, req.Password); err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondSuccess[any](c, nil, "评论删除成功")
}

// ListComments 处理根评论分页查询的 HTTP 请求。
// @Summary      获取评论列表
// @Description  分页查询帖子的根评论，按创建时间倒序。已删除评论以占位文案形式保留。
// @Tags         comments (评论)
// @Produce      json
// @Param        post_id path uint64 true "帖子ID" minimum(1)
// @Param        page query int false "页码 (从0开始)" format(int32) minimum(0) default(0)
// @Param        size query int false "每页数量" format(int32) minimum(1) maximum(50) default(5)
// @Success      200 {object} vo.CommentPageResponseWrapper "评论分页"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/posts/{post_id}/comments [get]
func (ctrl *CommentController) ListComments(c *gin.Context) {
	postID, ok := parseUintParam(c, "post_id")
	if !ok {
		return
	}
	var req dto.ListCommentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	pageVO, err := ctrl.commentService.ListComments(c.Request.Context(), postID, req.Page, req.Size)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, pageVO, "评论列表获取成功")
}

// ListReplies 处理回复分页查询的 HTTP 请求。
// @Summary      获取回复列表
// @Description  分页查询根评论下的回复，按创建时间正序。
// @Tags         comments (评论)
// @Produce      json
// @Param        comment_id path uint64 true "根评论ID" minimum(1)
// @Param        page query int false "页码 (从0开始)" format(int32) minimum(0) default(0)
// @Param        size query int false "每页数量" format(int32) minimum(1) maximum(50) default(5)
// @Success      200 {object} vo.ReplyPageResponseWrapper "回复分页"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数或目标是回复"
// @Failure      404 {object} vo.BaseResponseWrapper "评论不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/comments/{comment_id}/replies [get]
func (ctrl *CommentController) ListReplies(c *gin.Context) {
	commentID, ok := parseUintParam(c, "comment_id")
	if !ok {
		return
	}
	var req dto.ListCommentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	pageVO, err := ctrl.commentService.ListReplies(c.Request.Context(), commentID, req.Page, req.Size)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, pageVO, "回复列表获取成功")
}

// RegisterRoutes 注册评论相关路由
func (ctrl *CommentController) RegisterRoutes(group *gin.RouterGroup) {
	posts := group.Group("/posts")
	{
		posts.POST(":post_id/comments", ctrl.CreateComment) // POST /api/v1/board/posts/:post_id/comments
		posts.GET(":post_id/comments", ctrl.ListComments)   // GET /api/v1/board/posts/:post_id/comments
	}
	comments := group.Group("/comments")
	{
		comments.POST(":comment_id/replies", ctrl.CreateReply) // POST /api/v1/board/comments/:comment_id/replies
		comments.GET(":comment_id/replies", ctrl.ListReplies)  // GET /api/v1/board/comments/:comment_id/replies
		comments.DELETE(":comment_id", ctrl.DeleteComment)     // DELETE /api/v1/board/comments/:comment_id
	}
}
