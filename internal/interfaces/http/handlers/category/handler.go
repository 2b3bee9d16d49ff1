package category

import (
	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/application/category/usecases"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Slug        string  `json:"slug,omitempty" binding:"omitempty,slug"`
	Description *string `json:"description,omitempty"`
	Color       string  `json:"color,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

func (r *CreateCategoryRequest) ToCommand() usecases.CreateCategoryCommand {
	return usecases.CreateCategoryCommand{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Color:       r.Color,
		IsActive:    r.IsActive,
	}
}

type Handler struct {
	listReportUC   usecases.ListReportCategoriesExecutor
	listBlogUC     usecases.ListBlogCategoriesExecutor
	createReportUC usecases.CreateReportCategoryExecutor
	createBlogUC   usecases.CreateBlogCategoryExecutor
	logger         logger.Interface
}

func NewHandler(
	listReportUC usecases.ListReportCategoriesExecutor,
	listBlogUC usecases.ListBlogCategoriesExecutor,
	createReportUC usecases.CreateReportCategoryExecutor,
	createBlogUC usecases.CreateBlogCategoryExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		listReportUC:   listReportUC,
		listBlogUC:     listBlogUC,
		createReportUC: createReportUC,
		createBlogUC:   createBlogUC,
		logger:         logger,
	}
}

// ListReportCategories handles GET /api/categories/reports
func (h *Handler) ListReportCategories(c *gin.Context) {
	categories, err := h.listReportUC.Execute(c.Request.Context(), usecases.ListCategoriesQuery{ActiveOnly: true})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, categories)
}

// ListBlogCategories handles GET /api/categories/blogs
func (h *Handler) ListBlogCategories(c *gin.Context) {
	categories, err := h.listBlogUC.Execute(c.Request.Context(), usecases.ListCategoriesQuery{ActiveOnly: true})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, categories)
}

// CreateReportCategory handles POST /api/admin/categories/reports
func (h *Handler) CreateReportCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	created, err := h.createReportUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, created)
}

// CreateBlogCategory handles POST /api/admin/categories/blogs
func (h *Handler) CreateBlogCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	created, err := h.createBlogUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, created)
}
