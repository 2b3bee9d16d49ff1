package chatbot

import (
	"context"
	"strings"

	"github.com/scamguard-vn/scamguard/internal/domain/chat"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/scamclient"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

const (
	StrategyRules = "rules"
	StrategyAI    = "ai"
)

type Reply struct {
	Text     string
	Priority chat.Priority
}

// ReplyGenerator produces the bot answer for one visitor message.
type ReplyGenerator interface {
	Reply(ctx context.Context, sessionID, message string) (Reply, error)
}

type AIChatClient interface {
	Chat(ctx context.Context, message, sessionID string, history []scamclient.ChatTurn) (*scamclient.ChatResponse, error)
}

// AIReplier forwards messages to the AI service. Priority still comes from the
// rule table, and the rule answer is used whenever the service fails.
type AIReplier struct {
	client AIChatClient
	rules  *RuleEngine
	logger logger.Interface
}

func NewAIReplier(client AIChatClient, rules *RuleEngine, log logger.Interface) *AIReplier {
	return &AIReplier{client: client, rules: rules, logger: log}
}

func (r *AIReplier) Reply(ctx context.Context, sessionID, message string) (Reply, error) {
	local, rule := r.rules.Match(message)

	resp, err := r.client.Chat(ctx, message, sessionID, nil)
	if err != nil {
		r.logger.Warnw("ai reply failed, using rule engine",
			"session_id", sessionID,
			"rule", rule,
			"error", err,
			"is_timeout", scamclient.IsTimeout(err),
		)
		return local, nil
	}
	if strings.TrimSpace(resp.Response) == "" {
		return local, nil
	}

	return Reply{Text: resp.Response, Priority: local.Priority}, nil
}

// NewReplyGenerator selects the strategy configured by chat.reply_strategy.
func NewReplyGenerator(strategy string, rules *RuleEngine, client AIChatClient, log logger.Interface) ReplyGenerator {
	if strategy == StrategyAI && client != nil {
		log.Infow("chat replies proxied to ai service")
		return NewAIReplier(client, rules, log)
	}
	return rules
}
