package usecases

import (
	"context"
	"regexp"
	"strings"

	"github.com/scamguard-vn/scamguard/internal/domain/blog"
	"github.com/scamguard-vn/scamguard/internal/domain/category"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type ListCategoriesQuery struct {
	// ActiveOnly hides disabled categories; public listings always set it.
	ActiveOnly bool
}

type CreateCategoryCommand struct {
	Name        string
	Slug        string
	Description *string
	Color       string
	IsActive    *bool
}

type ListReportCategoriesUseCase struct {
	repo   category.Repository
	logger logger.Interface
}

func NewListReportCategoriesUseCase(repo category.Repository, logger logger.Interface) *ListReportCategoriesUseCase {
	return &ListReportCategoriesUseCase{repo: repo, logger: logger}
}

func (uc *ListReportCategoriesUseCase) Execute(ctx context.Context, query ListCategoriesQuery) ([]*category.ReportCategory, error) {
	cats, err := uc.repo.ListReportCategories(ctx, query.ActiveOnly)
	if err != nil {
		uc.logger.Errorw("failed to list report categories", "error", err)
		return nil, err
	}
	return cats, nil
}

type ListBlogCategoriesUseCase struct {
	repo   category.Repository
	logger logger.Interface
}

func NewListBlogCategoriesUseCase(repo category.Repository, logger logger.Interface) *ListBlogCategoriesUseCase {
	return &ListBlogCategoriesUseCase{repo: repo, logger: logger}
}

func (uc *ListBlogCategoriesUseCase) Execute(ctx context.Context, query ListCategoriesQuery) ([]*category.BlogCategory, error) {
	cats, err := uc.repo.ListBlogCategories(ctx, query.ActiveOnly)
	if err != nil {
		uc.logger.Errorw("failed to list blog categories", "error", err)
		return nil, err
	}
	return cats, nil
}

type CreateReportCategoryUseCase struct {
	repo   category.Repository
	logger logger.Interface
}

func NewCreateReportCategoryUseCase(repo category.Repository, logger logger.Interface) *CreateReportCategoryUseCase {
	return &CreateReportCategoryUseCase{repo: repo, logger: logger}
}

func (uc *CreateReportCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*category.ReportCategory, error) {
	if err := validateCategory(cmd, false); err != nil {
		return nil, err
	}

	c := &category.ReportCategory{
		Name:        strings.TrimSpace(cmd.Name),
		Description: cmd.Description,
		Color:       colorOrDefault(cmd.Color),
		IsActive:    cmd.IsActive == nil || *cmd.IsActive,
	}
	if err := uc.repo.CreateReportCategory(ctx, c); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("Category already exists", c.Name)
		}
		uc.logger.Errorw("failed to create report category", "name", c.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("report category created", "category_id", c.ID, "name", c.Name)
	return c, nil
}

type CreateBlogCategoryUseCase struct {
	repo   category.Repository
	logger logger.Interface
}

func NewCreateBlogCategoryUseCase(repo category.Repository, logger logger.Interface) *CreateBlogCategoryUseCase {
	return &CreateBlogCategoryUseCase{repo: repo, logger: logger}
}

func (uc *CreateBlogCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*category.BlogCategory, error) {
	if err := validateCategory(cmd, true); err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(cmd.Slug)
	if slug == "" {
		slug = blog.Slugify(cmd.Name)
	}
	if slug == "" {
		return nil, errors.NewValidationError("name must contain letters or digits")
	}

	c := &category.BlogCategory{
		Name:        strings.TrimSpace(cmd.Name),
		Slug:        slug,
		Description: cmd.Description,
		Color:       colorOrDefault(cmd.Color),
		IsActive:    cmd.IsActive == nil || *cmd.IsActive,
	}
	if err := uc.repo.CreateBlogCategory(ctx, c); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("Category already exists", c.Name)
		}
		uc.logger.Errorw("failed to create blog category", "name", c.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("blog category created", "category_id", c.ID, "slug", c.Slug)
	return c, nil
}

func validateCategory(cmd CreateCategoryCommand, withSlug bool) error {
	var fields []errors.FieldError
	if strings.TrimSpace(cmd.Name) == "" {
		fields = append(fields, errors.FieldError{Field: "name", Message: "name is required"})
	}
	if cmd.Color != "" && !hexColor.MatchString(cmd.Color) {
		fields = append(fields, errors.FieldError{Field: "color", Message: "color must be a #rrggbb hex value"})
	}
	if withSlug && cmd.Slug != "" && !utils.IsSlug(cmd.Slug) {
		fields = append(fields, errors.FieldError{Field: "slug", Message: "slug may only contain lowercase letters, digits and dashes"})
	}
	if len(fields) > 0 {
		return errors.NewFieldValidationError(constants.ErrMsgInvalidData, fields)
	}
	return nil
}

func colorOrDefault(c string) string {
	if c == "" {
		return category.DefaultColor
	}
	return c
}
