package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"yatta-chat/domain"
)

// TokenClient negotiates media-room access with the external token service.
// The token itself is opaque: this core only passes it along to the media
// transport.
type TokenClient struct {
	log     *slog.Logger
	baseURL string
	http    *http.Client
}

func NewTokenClient(log *slog.Logger, baseURL string, timeout time.Duration) *TokenClient {
	return &TokenClient{
		log:     log,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type tokenRequest struct {
	ConversationID int64           `json:"conversation_id"`
	CallType       domain.CallKind `json:"call_type"`
	CallID         string          `json:"call_id,omitempty"`
}

type tokenResponse struct {
	MediaURL string `json:"media_url"`
	// Older deployments answer with the transport-specific field name.
	LivekitURL string `json:"livekit_url"`
	Token      string `json:"token"`
	Room       string `json:"room"`
}

// Token requests a media room descriptor for the given call.
func (t *TokenClient) Token(ctx context.Context, conversation domain.FlexID, kind domain.CallKind, callID string) (domain.MediaRoom, error) {
	payload, err := json.Marshal(tokenRequest{
		ConversationID: conversation.Int64(),
		CallType:       kind,
		CallID:         callID,
	})
	if err != nil {
		return domain.MediaRoom{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/api/v1/rtc/token/", bytes.NewReader(payload))
	if err != nil {
		return domain.MediaRoom{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.http.Do(req)
	if err != nil {
		return domain.MediaRoom{}, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.MediaRoom{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.MediaRoom{}, fmt.Errorf("token request: unexpected status %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.Unmarshal(raw, &tr); err != nil {
		return domain.MediaRoom{}, err
	}
	mediaURL := tr.MediaURL
	if mediaURL == "" {
		mediaURL = tr.LivekitURL
	}
	if mediaURL == "" || tr.Token == "" {
		return domain.MediaRoom{}, fmt.Errorf("token response missing url or token")
	}
	return domain.MediaRoom{URL: mediaURL, Token: tr.Token, Name: tr.Room}, nil
}
