package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/service"
)

// PostController 定义帖子控制器的结构体
type PostController struct {
	postService     service.PostService     // 服务层接口，通过依赖注入传入
	postListService service.PostListService // 列表引擎服务
}

// NewPostController 构造函数，用于创建 PostController 实例
func NewPostController(postService service.PostService, postListService service.PostListService) *PostController {
	return &PostController{
		postService:     postService,
		postListService: postListService,
	}
}

// CreatePost 处理创建帖子的 HTTP 请求。
// @Summary      创建新帖子
// @Description  匿名发布帖子。密码仅用于后续变更操作的鉴权，入库前会被哈希。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePostRequest true "帖子内容"
// @Success      200 {object} vo.PostResponseWrapper "创建成功，返回帖子信息"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	postVO, err := ctrl.postService.CreatePost(c.Request.Context(), &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, postVO, "帖子创建成功")
}

// GetPostDetail 处理获取帖子详情的 HTTP 请求。
// @Summary      获取帖子详情
// @Description  读取帖子详情，浏览量加一。返回体携带点赞数、评论数与第一页根评论；携带访客标识时附带该访客的点赞状态。
// @Tags         posts (帖子)
// @Produce      json
// @Param        post_id path uint64 true "帖子ID" minimum(1)
// @Param        X-Guest-Id header string false "访客标识 (用于返回 liked 状态)"
// @Success      200 {object} vo.PostDetailResponseWrapper "帖子详情"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的路径参数"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/posts/{post_id} [get]
func (ctrl *PostController) GetPostDetail(c *gin.Context) {
	postID, ok := parseUintParam(c, "post_id")
	if !ok {
		return
	}
	// 详情页的访客标识是可选的，缺省时 liked 恒为 false
	guestID := c.GetHeader(GuestIDHeader)
	if len(guestID) > 64 {
		guestID = ""
	}

	detail, err := ctrl.postService.GetPostDetail(c.Request.Context(), postID, guestID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, detail, "帖子详情获取成功")
}

// UpdatePost 处理更新帖子的 HTTP 请求。
// @Summary      更新帖子
// @Description  整体替换帖子的标题、内容与标签，需提供发布时设置的密码。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        post_id path uint64 true "帖子ID" minimum(1)
// @Param        request body dto.UpdatePostRequest true "更新内容与密码"
// @Success      200 {object} vo.PostResponseWrapper "更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      403 {object} vo.BaseResponseWrapper "密码不正确"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/posts/{post_id} [put]
func (ctrl *PostController) UpdatePost(c *gin.Context) {
	postID, ok := parseUintParam(c, "post_id")
	if !ok {
		return
	}
	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	postVO, err := ctrl.postService.UpdatePost(c.Request.Context(), postID, &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, postVO, "帖子更新成功")
}

// ChangePostPassword 处理修改帖子密码的 HTTP 请求。
// @Summary      修改帖子密码
// @Description  校验旧密码后更换新密码，新密码至少 4 个字符。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        post_id path uint64 true "帖子ID" minimum(1)
// @Param        request body dto.ChangePostPasswordRequest true "旧密码与新密码"
// @Success      200 {object} vo.BaseResponseWrapper "修改成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      403 {object} vo.BaseResponseWrapper "旧密码不正确"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/posts/{post_id}/password [patch]
func (ctrl *PostController) ChangePostPassword(c *gin.Context) {
	postID, ok := parseUintParam(c, "post_id")
	if !ok {
		return
	}
	var req dto.ChangePostPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	if err := ctrl.postService.ChangePassword(c.Request.Context(), postID, &req); err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondSuccess[any](c, nil, "帖子密码修改成功")
}

// DeletePost 处理删除帖子的 HTTP 请求。
// @Summary      删除帖子
// @Description  校验密码后硬删除帖子及其全部评论、点赞与标签。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        post_id path uint64 true "帖子ID" minimum(1)
// @Param        request body dto.DeletePostRequest true "帖子密码"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      403 {object} vo.BaseResponseWrapper "密码不正确"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/posts/{post_id} [delete]
func (ctrl *PostController) DeletePost(c *gin.Context) {
	postID, ok := parseUintParam(c, "post_id")
	if !ok {
		return
	}
	var req dto.DeletePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	if err := ctrl.postService.DeletePost(c.Request.Context(), postID, req.Password); err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondSuccess[any](c, nil, "帖子删除成功")
}

// ListPosts 处理帖子列表查询的 HTTP 请求。
// @Summary      获取帖子列表
// @Description  支持标题/内容/作者的包含搜索与标签的精确搜索，latest/views/likes 三种排序，页大小 10 或 20。
// @Tags         posts (帖子)
// @Produce      json
// @Param        page query int false "页码 (从0开始)" format(int32) minimum(0) default(0)
// @Param        size query int false "每页数量" format(int32) Enums(10,20) default(10)
// @Param        searchType query string false "搜索类型" Enums(title,content,author,hashtag)
// @Param        keyword query string false "搜索关键词 (最大长度 200)" maxLength(200)
// @Param        sort query string false "排序方式" Enums(latest,views,likes) default(latest)
// @Success      200 {object} vo.PostListPageResponseWrapper "帖子列表与全站统计"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/posts [get]
func (ctrl *PostController) ListPosts(c *gin.Context) {
	var req dto.ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	pageVO, err := ctrl.postListService.ListPosts(c.Request.Context(), req.Normalize())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, pageVO, "帖子列表获取成功")
}

// RegisterRoutes 注册帖子相关路由
func (ctrl *PostController) RegisterRoutes(group *gin.RouterGroup) {
	posts := group.Group("/posts")
	{
		posts.POST("", ctrl.CreatePost)                          // POST /api/v1/board/posts
		posts.GET("", ctrl.ListPosts)                            // GET /api/v1/board/posts
		posts.GET(":post_id", ctrl.GetPostDetail)                // GET /api/v1/board/posts/:post_id
		posts.PUT(":post_id", ctrl.UpdatePost)                   // PUT /api/v1/board/posts/:post_id
		posts.DELETE(":post_id", ctrl.DeletePost)                // DELETE /api/v1/board/posts/:post_id
		posts.PATCH(":post_id/password", ctrl.ChangePostPassword) // PATCH /api/v1/board/posts/:post_id/password
	}
}
