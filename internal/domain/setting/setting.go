package setting

import (
	"strconv"
	"strings"
	"time"
)

// Well-known keys seeded on first start.
const (
	KeySiteName          = "site_name"
	KeyMaintenanceMode   = "maintenance_mode"
	KeyMaxReportsPerDay  = "max_reports_per_day"
	KeyChatReplyStrategy = "chat_reply_strategy"
)

// SystemSetting is a key/value pair editable by administrators. Values are stored as text.
type SystemSetting struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description *string   `json:"description"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BoolValue parses the value as a boolean; anything unparsable is false.
func (s *SystemSetting) BoolValue() bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s.Value))
	return err == nil && b
}

// IntValue parses the value as an integer.
func (s *SystemSetting) IntValue() (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s.Value))
	if err != nil {
		return 0, ErrInvalidValueType
	}
	return v, nil
}
