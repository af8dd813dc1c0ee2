package controller

import (
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/board_service/service"
)

// HotPostController 定义热门帖子控制器的结构体
type HotPostController struct {
	hotPostService service.HotPostService
}

// NewHotPostController 构造函数，用于创建 HotPostController 实例
func NewHotPostController(hotPostService service.HotPostService) *HotPostController {
	return &HotPostController{
		hotPostService: hotPostService,
	}
}

// GetHotPosts 处理获取热门帖子榜单的 HTTP 请求。
// @Summary      获取热门帖子
// @Description  按浏览量取热门帖子摘要。优先读 Redis 缓存，未命中时回源数据库。
// @Tags         posts (帖子)
// @Produce      json
// @Success      200 {object} vo.HotPostsResponseWrapper "热门帖子列表"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/hot-posts [get]
func (ctrl *HotPostController) GetHotPosts(c *gin.Context) {
	posts, err := ctrl.hotPostService.GetHotPosts(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, posts, "热门帖子检索成功")
}

// RegisterRoutes 注册热门帖子路由
func (ctrl *HotPostController) RegisterRoutes(group *gin.RouterGroup) {
	hotPosts := group.Group("/hot-posts") // 基础路径 /hot-posts
	{
		hotPosts.GET("", ctrl.GetHotPosts) // GET /hot-posts
	}
}
