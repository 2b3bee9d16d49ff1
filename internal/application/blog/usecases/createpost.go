package usecases

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/scamguard-vn/scamguard/internal/domain/blog"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

const excerptLength = 200

type CreatePostCommand struct {
	Title      string
	Slug       string
	Excerpt    string
	Content    string
	CoverImage *string
	Tags       []string
	Category   string
	ReadTime   int
	Status     string
	Featured   bool
	AuthorName string
}

type CreatePostUseCase struct {
	blogRepo blog.Repository
	renderer Renderer
	logger   logger.Interface
	now      func() time.Time
}

func NewCreatePostUseCase(blogRepo blog.Repository, renderer Renderer, logger logger.Interface) *CreatePostUseCase {
	return &CreatePostUseCase{
		blogRepo: blogRepo,
		renderer: renderer,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (uc *CreatePostUseCase) Execute(ctx context.Context, cmd CreatePostCommand) (*blog.Post, error) {
	uc.logger.Infow("executing create blog post use case", "title", cmd.Title)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(cmd.Slug)
	if slug == "" {
		slug = blog.Slugify(cmd.Title)
	}
	if slug == "" {
		return nil, errors.NewFieldValidationError(constants.ErrMsgInvalidData, []errors.FieldError{
			{Field: "title", Message: "title must contain letters or digits"},
		})
	}

	existing, err := uc.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		uc.logger.Errorw("failed to check blog slug", "slug", slug, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("A blog post with this slug already exists", slug)
	}

	contentHTML, err := uc.renderer.ToHTMLSanitized(cmd.Content)
	if err != nil {
		uc.logger.Errorw("failed to render blog content", "slug", slug, "error", err)
		return nil, errors.NewValidationError("content could not be rendered")
	}

	excerpt := uc.renderer.Sanitize(strings.TrimSpace(cmd.Excerpt))
	if excerpt == "" {
		excerpt = truncateRunes(strings.TrimSpace(uc.renderer.StripTags(contentHTML)), excerptLength)
	}

	post := &blog.Post{
		Title:       strings.TrimSpace(cmd.Title),
		Slug:        slug,
		Excerpt:     excerpt,
		Content:     cmd.Content,
		ContentHTML: contentHTML,
		CoverImage:  cmd.CoverImage,
		Tags:        cmd.Tags,
		Category:    strings.TrimSpace(cmd.Category),
		ReadTime:    cmd.ReadTime,
		Status:      blog.Status(cmd.Status),
		Featured:    cmd.Featured,
		AuthorName:  strings.TrimSpace(cmd.AuthorName),
	}
	if post.AuthorName == "" {
		post.AuthorName = "ScamGuard"
	}
	post.ApplyDefaults(uc.now())

	if err := uc.blogRepo.Create(ctx, post); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("A blog post with this slug already exists", slug)
		}
		uc.logger.Errorw("failed to create blog post", "slug", slug, "error", err)
		return nil, err
	}

	uc.logger.Infow("blog post created", "post_id", post.ID, "slug", post.Slug, "status", post.Status)
	return post, nil
}

func (uc *CreatePostUseCase) validateCommand(cmd CreatePostCommand) error {
	var fields []errors.FieldError
	if strings.TrimSpace(cmd.Title) == "" {
		fields = append(fields, errors.FieldError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(cmd.Content) == "" {
		fields = append(fields, errors.FieldError{Field: "content", Message: "content is required"})
	}
	if s := strings.TrimSpace(cmd.Slug); s != "" && !utils.IsSlug(s) {
		fields = append(fields, errors.FieldError{Field: "slug", Message: "slug may only contain lowercase letters, digits and dashes"})
	}
	if cmd.Status != "" && !blog.Status(cmd.Status).IsValid() {
		fields = append(fields, errors.FieldError{Field: "status", Message: "status must be draft, published or archived"})
	}
	if cmd.ReadTime < 0 {
		fields = append(fields, errors.FieldError{Field: "readTime", Message: "readTime cannot be negative"})
	}
	if len(fields) > 0 {
		return errors.NewFieldValidationError(constants.ErrMsgInvalidData, fields)
	}
	return nil
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n])) + "…"
}
