package blog

import (
	"github.com/scamguard-vn/scamguard/internal/application/blog/usecases"
	domain "github.com/scamguard-vn/scamguard/internal/domain/blog"
)

type CreatePostRequest struct {
	Title      string   `json:"title" binding:"required,max=300"`
	Slug       string   `json:"slug,omitempty"`
	Excerpt    string   `json:"excerpt,omitempty"`
	Content    string   `json:"content" binding:"required"`
	CoverImage *string  `json:"coverImage,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Category   string   `json:"category,omitempty"`
	ReadTime   int      `json:"readTime,omitempty"`
	Status     string   `json:"status,omitempty"`
	Featured   bool     `json:"featured"`
	AuthorName string   `json:"authorName,omitempty"`
}

func (r *CreatePostRequest) ToCommand() usecases.CreatePostCommand {
	return usecases.CreatePostCommand{
		Title:      r.Title,
		Slug:       r.Slug,
		Excerpt:    r.Excerpt,
		Content:    r.Content,
		CoverImage: r.CoverImage,
		Tags:       r.Tags,
		Category:   r.Category,
		ReadTime:   r.ReadTime,
		Status:     r.Status,
		Featured:   r.Featured,
		AuthorName: r.AuthorName,
	}
}

type UpdatePostRequest struct {
	Title      *string   `json:"title,omitempty"`
	Slug       *string   `json:"slug,omitempty"`
	Excerpt    *string   `json:"excerpt,omitempty"`
	Content    *string   `json:"content,omitempty"`
	CoverImage *string   `json:"coverImage,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
	Category   *string   `json:"category,omitempty"`
	ReadTime   *int      `json:"readTime,omitempty"`
	Status     *string   `json:"status,omitempty"`
	Featured   *bool     `json:"featured,omitempty"`
	AuthorName *string   `json:"authorName,omitempty"`
}

func (r *UpdatePostRequest) ToPatch() domain.Patch {
	patch := domain.Patch{
		Title:      r.Title,
		Slug:       r.Slug,
		Excerpt:    r.Excerpt,
		Content:    r.Content,
		CoverImage: r.CoverImage,
		Tags:       r.Tags,
		Category:   r.Category,
		ReadTime:   r.ReadTime,
		Featured:   r.Featured,
		AuthorName: r.AuthorName,
	}
	if r.Status != nil {
		s := domain.Status(*r.Status)
		patch.Status = &s
	}
	return patch
}
