package database

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	kvPairRegex = regexp.MustCompile(`(?i)\b(host|user|password|dbname|port|sslmode)=`)
	kvPassword  = regexp.MustCompile(`(?i)(password=)(\S+)`)
)

// NormalizeDSN accepts a URL style DSN (postgres://...) or a key=value list, trims quotes and
// whitespace, and adds sslmode=disable to key=value lists that lack it.
func NormalizeDSN(raw string) string {
	s := strings.Trim(strings.TrimSpace(raw), "\"'")
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return s
	}
	if !kvPairRegex.MatchString(s) {
		return s
	}
	cleaned := strings.Join(strings.Fields(s), " ")
	if !strings.Contains(strings.ToLower(cleaned), "sslmode=") {
		cleaned += " sslmode=disable"
	}
	return cleaned
}

// ToURLDSN converts a key=value postgres DSN into URL form, which golang-migrate requires.
func ToURLDSN(kvDSN string) string {
	s := NormalizeDSN(kvDSN)
	lower := strings.ToLower(s)
	if s == "" || strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return s
	}
	m := map[string]string{}
	for _, part := range strings.Fields(s) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 {
			m[strings.ToLower(kv[0])] = kv[1]
		}
	}
	if m["host"] == "" || m["user"] == "" || m["dbname"] == "" {
		return s
	}
	u := &url.URL{Scheme: "postgres", Host: m["host"], Path: "/" + m["dbname"]}
	if port := m["port"]; port != "" {
		u.Host += ":" + port
	}
	if pass := m["password"]; pass != "" {
		u.User = url.UserPassword(m["user"], pass)
	} else {
		u.User = url.User(m["user"])
	}
	if sslm, ok := m["sslmode"]; ok {
		u.RawQuery = url.Values{"sslmode": {sslm}}.Encode()
	}
	return u.String()
}

// MaskDSN hides the password for logging.
func MaskDSN(dsn string) string {
	if u, err := url.Parse(dsn); err == nil && u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), "***")
			return u.String()
		}
		return dsn
	}
	return kvPassword.ReplaceAllString(dsn, "${1}***")
}

// MySQLDSN adds the parameters the service relies on: parseTime for time columns,
// utf8mb4 for Vietnamese text and multiStatements for golang-migrate scripts.
func MySQLDSN(dsn string) string {
	dsn = strings.TrimPrefix(strings.TrimSpace(dsn), "mysql://")
	params := []string{"parseTime=true", "charset=utf8mb4", "multiStatements=true"}
	for _, p := range params {
		key := p[:strings.Index(p, "=")+1]
		if strings.Contains(dsn, key) {
			continue
		}
		if strings.Contains(dsn, "?") {
			dsn += "&" + p
		} else {
			dsn += "?" + p
		}
	}
	return dsn
}
