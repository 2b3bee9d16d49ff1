package chatbot

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/scamguard-vn/scamguard/internal/domain/chat"
)

//go:embed rules.yaml
var defaultRules []byte

type Rule struct {
	Name     string   `yaml:"name"`
	Priority string   `yaml:"priority"`
	Keywords []string `yaml:"keywords"`
	Patterns []string `yaml:"patterns"`
	Response string   `yaml:"response"`

	compiled []*regexp.Regexp
}

type ruleFile struct {
	Default string `yaml:"default"`
	Rules   []Rule `yaml:"rules"`
}

// RuleEngine answers with the first rule whose keyword or pattern matches.
type RuleEngine struct {
	fallback string
	rules    []Rule
}

// LoadRules reads rules from path, or the built-in rule set when path is empty.
func LoadRules(path string) (*RuleEngine, error) {
	if path == "" {
		return ParseRules(defaultRules)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chat rules: %w", err)
	}
	return ParseRules(data)
}

func ParseRules(data []byte) (*RuleEngine, error) {
	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse chat rules: %w", err)
	}
	if strings.TrimSpace(f.Default) == "" {
		return nil, fmt.Errorf("chat rules: default response is required")
	}

	lower := newLowerer()
	for i := range f.Rules {
		r := &f.Rules[i]
		if r.Response == "" {
			return nil, fmt.Errorf("chat rule %q: response is required", r.Name)
		}
		if r.Priority != "" && !chat.Priority(r.Priority).IsValid() {
			return nil, fmt.Errorf("chat rule %q: invalid priority %q", r.Name, r.Priority)
		}
		for j, kw := range r.Keywords {
			r.Keywords[j] = lower.String(norm.NFC.String(kw))
		}
		for _, p := range r.Patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("chat rule %q: invalid pattern %q: %w", r.Name, p, err)
			}
			r.compiled = append(r.compiled, re)
		}
	}

	return &RuleEngine{
		fallback: f.Default,
		rules:    f.Rules,
	}, nil
}

// Casers keep state, so each call gets its own.
func newLowerer() cases.Caser {
	return cases.Lower(language.Vietnamese)
}

// Match returns the reply and the name of the matching rule ("" for the default).
func (e *RuleEngine) Match(message string) (Reply, string) {
	text := newLowerer().String(norm.NFC.String(message))

	for _, r := range e.rules {
		if r.matches(text) {
			priority := chat.PriorityNormal
			if r.Priority != "" {
				priority = chat.Priority(r.Priority)
			}
			return Reply{Text: r.Response, Priority: priority}, r.Name
		}
	}
	return Reply{Text: e.fallback, Priority: chat.PriorityNormal}, ""
}

func (e *RuleEngine) Reply(_ context.Context, _ string, message string) (Reply, error) {
	reply, _ := e.Match(message)
	return reply, nil
}

func (r *Rule) matches(text string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	for _, re := range r.compiled {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
