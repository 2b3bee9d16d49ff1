package blog

import (
	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/application/blog/usecases"
	domain "github.com/scamguard-vn/scamguard/internal/domain/blog"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

type Handler struct {
	createPostUC     usecases.CreatePostExecutor
	getPostUC        usecases.GetPostExecutor
	listPostsUC      usecases.ListPostsExecutor
	listByCategoryUC usecases.ListPostsByCategoryExecutor
	listFeaturedUC   usecases.ListFeaturedPostsExecutor
	updatePostUC     usecases.UpdatePostExecutor
	deletePostUC     usecases.DeletePostExecutor
	logger           logger.Interface
}

func NewHandler(
	createPostUC usecases.CreatePostExecutor,
	getPostUC usecases.GetPostExecutor,
	listPostsUC usecases.ListPostsExecutor,
	listByCategoryUC usecases.ListPostsByCategoryExecutor,
	listFeaturedUC usecases.ListFeaturedPostsExecutor,
	updatePostUC usecases.UpdatePostExecutor,
	deletePostUC usecases.DeletePostExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createPostUC:     createPostUC,
		getPostUC:        getPostUC,
		listPostsUC:      listPostsUC,
		listByCategoryUC: listByCategoryUC,
		listFeaturedUC:   listFeaturedUC,
		updatePostUC:     updatePostUC,
		deletePostUC:     deletePostUC,
		logger:           logger,
	}
}

// CreatePost handles POST /api/blogs
// @Summary Create a blog post
// @Description Markdown content is rendered to sanitized contentHtml. A slug is derived from the title when omitted.
// @Tags blogs
// @Accept json
// @Produce json
// @Security Bearer
// @Param post body CreatePostRequest true "Post data"
// @Success 201 {object} blog.Post
// @Failure 400 {object} utils.ErrorBody
// @Failure 409 {object} utils.ErrorBody
// @Router /api/blogs [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := req.ToCommand()
	if cmd.AuthorName == "" {
		cmd.AuthorName = c.GetString(constants.ContextKeyAdminName)
	}

	created, err := h.createPostUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, created)
}

// GetPost handles GET /api/blogs/:id
// @Summary Get blog post by ID
// @Description Reading a published post increments its view counter.
// @Tags blogs
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} blog.Post
// @Failure 404 {object} utils.ErrorBody
// @Router /api/blogs/{id} [get]
func (h *Handler) GetPost(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "blog post")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	h.getPost(c, usecases.GetPostQuery{ID: id})
}

// GetPostBySlug handles GET /api/blogs/slug/:slug
func (h *Handler) GetPostBySlug(c *gin.Context) {
	h.getPost(c, usecases.GetPostQuery{Slug: c.Param("slug")})
}

func (h *Handler) getPost(c *gin.Context, query usecases.GetPostQuery) {
	post, err := h.getPostUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, post)
}

// ListPosts handles GET /api/blogs
// Anonymous callers only ever see published posts; an authenticated admin may filter by any status.
func (h *Handler) ListPosts(c *gin.Context) {
	filter := domain.Filter{
		Category: utils.OptionalQuery(c, "category"),
		Featured: utils.ParseBoolQuery(c, "featured"),
	}

	status := c.Query("status")
	if _, isAdmin := c.Get(constants.ContextKeyAdminID); !isAdmin {
		status = string(domain.StatusPublished)
	}
	if status != "" {
		s := domain.Status(status)
		filter.Status = &s
	}

	posts, err := h.listPostsUC.Execute(c.Request.Context(), usecases.ListPostsQuery{
		Search: c.Query("search"),
		Filter: filter,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, posts)
}

// ListByCategory handles GET /api/blogs/category/:category
func (h *Handler) ListByCategory(c *gin.Context) {
	posts, err := h.listByCategoryUC.Execute(c.Request.Context(), usecases.ListPostsByCategoryQuery{
		Category: c.Param("category"),
		Limit:    utils.ParseLimit(c, constants.DefaultBlogCategoryLimit),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, posts)
}

// ListFeatured handles GET /api/blogs/featured
func (h *Handler) ListFeatured(c *gin.Context) {
	posts, err := h.listFeaturedUC.Execute(c.Request.Context(), usecases.ListFeaturedPostsQuery{
		Limit: utils.ParseLimit(c, constants.DefaultFeaturedBlogLimit),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, posts)
}

// UpdatePost handles PUT /api/admin/blogs/:id
func (h *Handler) UpdatePost(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "blog post")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePostRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	updated, err := h.updatePostUC.Execute(c.Request.Context(), usecases.UpdatePostCommand{
		ID:    id,
		Patch: req.ToPatch(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, updated)
}

// DeletePost handles DELETE /api/admin/blogs/:id
func (h *Handler) DeletePost(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "blog post")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deletePostUC.Execute(c.Request.Context(), usecases.DeletePostCommand{ID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DeletedResponse(c)
}
