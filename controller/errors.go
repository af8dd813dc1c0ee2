package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/board_service/myErrors"
)

// respondDomainError 把服务层的领域错误统一映射为 HTTP 响应。
// 映射约定:
//   - 资源不存在       -> 404
//   - 密码不匹配       -> 403
//   - 点赞状态冲突     -> 409
//   - 嵌套回复被拒绝   -> 400
//   - 其余             -> 500，对外只给笼统消息，细节留在日志里
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, myErrors.ErrPostNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子不存在")
	case errors.Is(err, myErrors.ErrCommentNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "评论不存在")
	case errors.Is(err, myErrors.ErrPasswordMismatch):
		response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, "密码不正确")
	case errors.Is(err, myErrors.ErrAlreadyLiked):
		response.RespondError(c, http.StatusConflict, response.ErrCodeClientInvalidInput, "已经点过赞了")
	case errors.Is(err, myErrors.ErrNotLiked):
		response.RespondError(c, http.StatusConflict, response.ErrCodeClientInvalidInput, "尚未点过赞")
	case errors.Is(err, myErrors.ErrNestedReplyNotAllowed):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "不支持对回复再回复")
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "服务器内部错误")
	}
}

// parseUintParam 解析路径参数中的无符号整数 ID。
// 解析失败时直接写出 400 响应并返回 false。
func parseUintParam(c *gin.Context, name string) (uint64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的路径参数 "+name)
		return 0, false
	}
	return id, true
}
