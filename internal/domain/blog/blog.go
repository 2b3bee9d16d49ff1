// Package blog models the awareness articles published on the site.
package blog

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

const (
	DefaultCategory = "general"
	DefaultReadTime = 5
)

type Post struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	ContentHTML string     `json:"contentHtml"`
	CoverImage  *string    `json:"coverImage"`
	Tags        []string   `json:"tags"`
	Category    string     `json:"category"`
	ReadTime    int        `json:"readTime"`
	Views       int64      `json:"views"`
	Status      Status     `json:"status"`
	Featured    bool       `json:"featured"`
	AuthorName  string     `json:"authorName"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// IsPublished reports whether the post is visible to readers.
func (p *Post) IsPublished() bool {
	return p.Status == StatusPublished
}

// ApplyDefaults fills the defaults of a new post and stamps PublishedAt when it is
// created already published.
func (p *Post) ApplyDefaults(now time.Time) {
	if p.Status == "" {
		p.Status = StatusDraft
	}
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	if p.ReadTime <= 0 {
		p.ReadTime = DefaultReadTime
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if p.IsPublished() && p.PublishedAt == nil {
		p.PublishedAt = &now
	}
}

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	diacritics   = runes.Remove(runes.In(unicode.Mn))
)

// Slugify turns a (possibly Vietnamese) title into a lowercase ASCII slug.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.ReplaceAll(s, "đ", "d")
	if folded, _, err := transform.String(transform.Chain(norm.NFD, diacritics, norm.NFC), s); err == nil {
		s = folded
	}
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

type Filter struct {
	Category *string
	Status   *Status
	Featured *bool
	Limit    int
	Offset   int
}

type Patch struct {
	Title      *string
	Slug       *string
	Excerpt    *string
	Content    *string
	CoverImage *string
	Tags       *[]string
	Category   *string
	ReadTime   *int
	Status     *Status
	Featured   *bool
	AuthorName *string
}

type Stats struct {
	Total      int64            `json:"total"`
	Published  int64            `json:"published"`
	Draft      int64            `json:"draft"`
	TotalViews int64            `json:"totalViews"`
	ByCategory map[string]int64 `json:"byCategory"`
}
