package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/board_service/service"
)

// GuestIDHeader 携带匿名访客身份的请求头。
// 访客身份由客户端生成并自行保存，服务端只用它做点赞去重。
const GuestIDHeader = "X-Guest-Id"

// LikeController 定义点赞控制器的结构体
type LikeController struct {
	likeService service.LikeService
}

// NewLikeController 构造函数，用于创建 LikeController 实例
func NewLikeController(likeService service.LikeService) *LikeController {
	return &LikeController{
		likeService: likeService,
	}
}

// LikePost 处理点赞的 HTTP 请求。
// @Summary      点赞帖子
// @Description  访客对帖子点赞，同一访客对同一帖子只能点一次，重复点赞返回冲突。
// @Tags         likes (点赞)
// @Produce      json
// @Param        post_id path uint64 true "帖子ID" minimum(1)
// @Param        X-Guest-Id header string true "访客标识"
// @Success      200 {object} vo.LikeResponseWrapper "点赞成功，返回最新点赞数"
// @Failure      400 {object} vo.BaseResponseWrapper "缺少访客标识或参数无效"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      409 {object} vo.BaseResponseWrapper "已经点过赞"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/posts/{post_id}/likes [post]
func (ctrl *LikeController) LikePost(c *gin.Context) {
	postID, ok := parseUintParam(c, "post_id")
	if !ok {
		return
	}
	guestID, ok := requireGuestID(c)
	if !ok {
		return
	}

	likeVO, err := ctrl.likeService.LikePost(c.Request.Context(), postID, guestID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, likeVO, "点赞成功")
}

// UnlikePost 处理取消点赞的 HTTP 请求。
// @Summary      取消点赞
// @Description  访客取消对帖子的点赞，尚未点赞时返回冲突。
// @Tags         likes (点赞)
// @Produce      json
// @Param        post_id path uint64 true "帖子ID" minimum(1)
// @Param        X-Guest-Id header string true "访客标识"
// @Success      200 {object} vo.LikeResponseWrapper "取消成功，返回最新点赞数"
// @Failure      400 {object} vo.BaseResponseWrapper "缺少访客标识或参数无效"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      409 {object} vo.BaseResponseWrapper "尚未点过赞"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/posts/{post_id}/likes [delete]
func (ctrl *LikeController) UnlikePost(c *gin.Context) {
	postID, ok := parseUintParam(c, "post_id")
	if !ok {
		return
	}
	guestID, ok := requireGuestID(c)
	if !ok {
		return
	}

	likeVO, err := ctrl.likeService.UnlikePost(c.Request.Context(), postID, guestID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, likeVO, "取消点赞成功")
}

// RegisterRoutes 注册点赞相关路由
func (ctrl *LikeController) RegisterRoutes(group *gin.RouterGroup) {
	posts := group.Group("/posts")
	{
		posts.POST(":post_id/likes", ctrl.LikePost)     // POST /api/v1/board/posts/:post_id/likes
		posts.DELETE(":post_id/likes", ctrl.UnlikePost) // DELETE /api/v1/board/posts/:post_id/likes
	}
}

// requireGuestID 读取访客标识，缺失时写出 400 响应。
func requireGuestID(c *gin.Context) (string, bool) {
	guestID := c.GetHeader(GuestIDHeader)
	if guestID == "" || len(guestID) > 64 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "缺少或无效的 "+GuestIDHeader+" 请求头")
		return "", false
	}
	return guestID, true
}
