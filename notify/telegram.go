package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTelegramAPI = "https://api.telegram.org"

	// TestMessage is sent from the admin console to check the saved credentials.
	TestMessage = "🎉 測試訊息：您的 Telegram 通知設定成功！"
)

var ErrMissingCredentials = errors.New("telegram bot token or chat id is missing")

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}

// TelegramClient posts messages through the Bot API. One attempt per message.
type TelegramClient struct {
	baseURL string
	client  *http.Client
}

func NewTelegramClient(baseURL string) *TelegramClient {
	if baseURL == "" {
		baseURL = DefaultTelegramAPI
	}
	return &TelegramClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SendNotification sends an HTML message. It reports true only when
// Telegram answers 200 with ok set.
func (c *TelegramClient) SendNotification(ctx context.Context, token, chatID, message string) (bool, error) {
	if token == "" || chatID == "" {
		return false, ErrMissingCredentials
	}

	body, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: message, ParseMode: "HTML"})
	if err != nil {
		return false, err
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		// Drop the URL from the error, it carries the bot token.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return false, fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	var out sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("telegram returned status %d: %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || !out.OK {
		return false, fmt.Errorf("telegram returned status %d: %s", resp.StatusCode, out.Description)
	}
	return true, nil
}
