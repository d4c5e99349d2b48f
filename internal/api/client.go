package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shoutbox/internal/board"
)

const genericErrMsg = "something went wrong"

// Client talks to the board server. Success bodies are read only for
// the two list endpoints; writes just need the status code.
type Client struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// LoginURL is where the user goes when the server answers 401.
func (c *Client) LoginURL() string {
	return c.baseURL + "/login"
}

// ListUsers fetches the distinct author names on the board.
func (c *Client) ListUsers(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/sentences/users", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	var users []string
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("decoding user list: %w", err)
	}
	return users, nil
}

// ListSentences fetches the feed. The filters become the exact query
// string the server expects; filtering, search matching and ordering
// all happen server-side, the result comes back ready to display.
func (c *Client) ListSentences(ctx context.Context, f board.Filters) ([]board.Sentence, error) {
	u := c.baseURL + "/api/sentences?" + f.Values().Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing sentences: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	var sentences []board.Sentence
	if err := json.NewDecoder(resp.Body).Decode(&sentences); err != nil {
		return nil, fmt.Errorf("decoding sentence list: %w", err)
	}
	return sentences, nil
}

// CreateSentence posts a draft to the board.
func (c *Client) CreateSentence(ctx context.Context, d board.Draft) error {
	body, err := json.Marshal(d)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/sentences", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting sentence: %w", err)
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

// DeleteSentence asks the server to remove a sentence. Ownership is
// the server's call: anyone but the author gets a 403 back.
func (c *Client) DeleteSentence(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/sentences/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("deleting sentence: %w", err)
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

// checkStatus maps a response onto the error taxonomy: nil for 2xx,
// the auth sentinels for 401 and 403, ServerError for everything else.
func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrAuthRequired
	case resp.StatusCode == http.StatusForbidden:
		return ErrForbidden
	}
	return &ServerError{Status: resp.StatusCode, Message: serverMessage(resp.Body)}
}

func serverMessage(r io.Reader) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 1024)).Decode(&body); err != nil || body.Error == "" {
		return genericErrMsg
	}
	return body.Error
}
