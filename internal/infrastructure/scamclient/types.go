package scamclient

import "time"

// Sources understood by the scraping service.
const (
	SourceAdmin       = "admin"
	SourceCheckscam   = "checkscam"
	SourceChongluadao = "chongluadao"
	SourceAll         = "all"
)

// IsValidSource reports whether source can be queried individually.
func IsValidSource(source string) bool {
	switch source {
	case SourceAdmin, SourceCheckscam, SourceChongluadao:
		return true
	}
	return false
}

// SourceResult is one scraped source inside a search envelope.
type SourceResult struct {
	Success    bool             `json:"success"`
	Source     string           `json:"source"`
	Keyword    string           `json:"keyword"`
	TotalScams int              `json:"total_scams"`
	Data       []map[string]any `json:"data"`
	Error      string           `json:"error,omitempty"`
}

// SearchResponse is the aggregated search envelope.
type SearchResponse struct {
	Success        bool           `json:"success"`
	Keyword        string         `json:"keyword"`
	TotalResults   int            `json:"total_results"`
	Sources        []SourceResult `json:"sources"`
	Cached         bool           `json:"cached"`
	ResponseTimeMs int64          `json:"response_time_ms"`
}

type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Message   string     `json:"message"`
	SessionID string     `json:"session_id,omitempty"`
	Context   []ChatTurn `json:"context,omitempty"`
}

type ChatResponse struct {
	Response  string    `json:"response"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type AnalyzeResponse struct {
	IsScam      bool     `json:"is_scam"`
	Confidence  float64  `json:"confidence"`
	Indicators  []string `json:"indicators"`
	Explanation string   `json:"explanation"`
}

type CacheStats struct {
	TotalCached int     `json:"total_cached"`
	HitRate     float64 `json:"hit_rate"`
	TotalHits   int     `json:"total_hits"`
	CacheSizeMB float64 `json:"cache_size_mb"`
}

type Health struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Database  string    `json:"database"`
	Redis     string    `json:"redis"`
	Timestamp time.Time `json:"timestamp"`
}

type messageRecipient struct {
	UserID string `json:"user_id"`
}

type messageText struct {
	Text string `json:"text"`
}

type sendMessageRequest struct {
	Recipient messageRecipient `json:"recipient"`
	Message   messageText      `json:"message"`
}

// SendResult mirrors the messaging API reply; Error == 0 means delivered.
type SendResult struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
	Data    struct {
		MessageID string `json:"message_id"`
	} `json:"data"`
}
