package usecases

import (
	"context"
	"strings"

	"github.com/scamguard-vn/scamguard/internal/domain/blog"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

type UpdatePostCommand struct {
	ID    uint
	Patch blog.Patch
}

// UpdatePostUseCase re-renders contentHtml whenever the markdown changes.
type UpdatePostUseCase struct {
	blogRepo blog.Repository
	renderer Renderer
	logger   logger.Interface
}

func NewUpdatePostUseCase(blogRepo blog.Repository, renderer Renderer, logger logger.Interface) *UpdatePostUseCase {
	return &UpdatePostUseCase{blogRepo: blogRepo, renderer: renderer, logger: logger}
}

func (uc *UpdatePostUseCase) Execute(ctx context.Context, cmd UpdatePostCommand) (*blog.Post, error) {
	p := cmd.Patch
	if err := validatePatch(p); err != nil {
		return nil, err
	}

	if p.Slug != nil {
		existing, err := uc.blogRepo.GetBySlug(ctx, *p.Slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != cmd.ID {
			return nil, errors.NewConflictError("A blog post with this slug already exists", *p.Slug)
		}
	}

	if p.Excerpt != nil {
		sanitized := uc.renderer.Sanitize(strings.TrimSpace(*p.Excerpt))
		p.Excerpt = &sanitized
	}

	var contentHTML *string
	if p.Content != nil {
		rendered, err := uc.renderer.ToHTMLSanitized(*p.Content)
		if err != nil {
			uc.logger.Errorw("failed to render blog content", "post_id", cmd.ID, "error", err)
			return nil, errors.NewValidationError("content could not be rendered")
		}
		contentHTML = &rendered
	}

	post, err := uc.blogRepo.Update(ctx, cmd.ID, p, contentHTML)
	if err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("A blog post with this slug already exists")
		}
		uc.logger.Errorw("failed to update blog post", "post_id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("blog post updated", "post_id", cmd.ID)
	return post, nil
}

func validatePatch(p blog.Patch) error {
	var fields []errors.FieldError
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		fields = append(fields, errors.FieldError{Field: "title", Message: "title cannot be empty"})
	}
	if p.Content != nil && strings.TrimSpace(*p.Content) == "" {
		fields = append(fields, errors.FieldError{Field: "content", Message: "content cannot be empty"})
	}
	if p.Slug != nil && !utils.IsSlug(*p.Slug) {
		fields = append(fields, errors.FieldError{Field: "slug", Message: "slug may only contain lowercase letters, digits and dashes"})
	}
	if p.Status != nil && !p.Status.IsValid() {
		fields = append(fields, errors.FieldError{Field: "status", Message: "status must be draft, published or archived"})
	}
	if p.ReadTime != nil && *p.ReadTime <= 0 {
		fields = append(fields, errors.FieldError{Field: "readTime", Message: "readTime must be positive"})
	}
	if len(fields) > 0 {
		return errors.NewFieldValidationError(constants.ErrMsgInvalidData, fields)
	}
	return nil
}

type DeletePostCommand struct {
	ID uint
}

type DeletePostUseCase struct {
	blogRepo blog.Repository
	logger   logger.Interface
}

func NewDeletePostUseCase(blogRepo blog.Repository, logger logger.Interface) *DeletePostUseCase {
	return &DeletePostUseCase{blogRepo: blogRepo, logger: logger}
}

func (uc *DeletePostUseCase) Execute(ctx context.Context, cmd DeletePostCommand) error {
	if err := uc.blogRepo.Delete(ctx, cmd.ID); err != nil {
		uc.logger.Errorw("failed to delete blog post", "post_id", cmd.ID, "error", err)
		return err
	}
	uc.logger.Infow("blog post deleted", "post_id", cmd.ID)
	return nil
}
