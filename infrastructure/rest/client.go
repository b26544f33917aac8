// Package rest implements the request/response collaborators: the
// message-persistence service and the media-token service. All identifier
// canonicalization happens here, at ingestion, through domain.FlexID.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"yatta-chat/domain"
)

// Client talks to the message-persistence service.
type Client struct {
	log     *slog.Logger
	baseURL string
	http    *http.Client
}

func NewClient(log *slog.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		log:     log,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Conversations fetches the conversation list. The backend answers with
// either a bare list or a paginated envelope; both normalize to a list and
// a shape mismatch normalizes to empty rather than an error.
func (c *Client) Conversations(ctx context.Context) ([]domain.Conversation, error) {
	raw, err := c.get(ctx, "/api/v1/chat/conversations/")
	if err != nil {
		return nil, err
	}
	return DecodeList[domain.Conversation](c.log, raw), nil
}

// Messages fetches a conversation's message history.
func (c *Client) Messages(ctx context.Context, conversation domain.FlexID) ([]domain.Message, error) {
	path := "/api/v1/chat/messages/?conversation=" + url.QueryEscape(conversation.String())
	raw, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	return DecodeList[domain.Message](c.log, raw), nil
}

// SendMessage persists a message over request/response. Used as the
// fallback path when the realtime channel is not open.
func (c *Client) SendMessage(ctx context.Context, conversation domain.FlexID, text string) (domain.Message, error) {
	body := map[string]any{
		"conversation": conversation.Int64(),
		"text":         text,
	}
	var msg domain.Message
	if err := c.post(ctx, "/api/v1/chat/messages/", body, &msg); err != nil {
		return domain.Message{}, err
	}
	return msg, nil
}

// StartOrGetConversation initiates contact with another user, returning the
// existing conversation when one is already there.
func (c *Client) StartOrGetConversation(ctx context.Context, targetUser domain.FlexID) (domain.Conversation, error) {
	body := map[string]any{"target_user_id": targetUser.Int64()}
	var conv domain.Conversation
	if err := c.post(ctx, "/api/v1/chat/conversations/start-or-get/", body, &conv); err != nil {
		return domain.Conversation{}, err
	}
	return conv, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	raw, err := c.do(req)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s: unexpected status %d", req.Method, req.URL.Path, resp.StatusCode)
	}
	return raw, nil
}

// envelope is the paginated response shape some endpoints use.
type envelope[T any] struct {
	Results []T `json:"results"`
}

// DecodeList normalizes the three response shapes the persistence service
// is known to produce: a bare JSON list, an enveloped {"results": [...]}
// list, or anything else, which decodes to an empty list instead of an
// error.
func DecodeList[T any](log *slog.Logger, raw []byte) []T {
	var list []T
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var env envelope[T]
	if err := json.Unmarshal(raw, &env); err == nil && env.Results != nil {
		return env.Results
	}
	log.Warn("Unrecognized list response shape, normalizing to empty")
	return []T{}
}
