package scamclient

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

const messagingTimeout = 10 * time.Second

// MessagingClient sends official-account messages to followers.
type MessagingClient struct {
	baseURL     string
	accessToken string
	appSecret   string
	httpClient  *http.Client
	logger      logger.Interface
}

func NewMessagingClient(baseURL, accessToken, appSecret string, log logger.Interface) *MessagingClient {
	return &MessagingClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		appSecret:   appSecret,
		httpClient:  &http.Client{Timeout: messagingTimeout},
		logger:      log.Named("messaging"),
	}
}

// SendText delivers a plain text message to userID.
func (c *MessagingClient) SendText(ctx context.Context, userID, text string) (*SendResult, error) {
	body := sendMessageRequest{
		Recipient: messageRecipient{UserID: userID},
		Message:   messageText{Text: text},
	}
	headers := map[string]string{"access_token": c.accessToken}

	var out SendResult
	if err := doJSON(ctx, c.httpClient, c.logger, http.MethodPost, c.baseURL+"/message", headers, body, &out); err != nil {
		return nil, err
	}
	if out.Error != 0 {
		return &out, fmt.Errorf("%w: code %d: %s", ErrSendFailed, out.Error, out.Message)
	}
	return &out, nil
}

// VerifySignature checks a webhook payload against its hex HMAC-SHA256 signature.
func (c *MessagingClient) VerifySignature(payload []byte, signature string) bool {
	return VerifySignature(c.appSecret, payload, signature)
}

func VerifySignature(secret string, payload []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}
