// Package classifier calls the external clothing-recognition endpoint
// used to prefill item details from a photo.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrUnavailable    = errors.New("image analysis is not configured")
	ErrAnalysisFailed = errors.New("analysis failed")
)

type Suggestion struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type Client struct {
	endpoint string
	http     *http.Client
}

func New(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// Analyze sends the base64 image payload and returns the suggested item
// details. Any non-200 answer surfaces as ErrAnalysisFailed; the caller
// shows it to the user as-is and lets them fill the form manually.
func (c *Client) Analyze(ctx context.Context, imageBase64 string) (Suggestion, error) {
	if c.endpoint == "" {
		return Suggestion{}, ErrUnavailable
	}

	body, err := json.Marshal(map[string]string{"image": imageBase64})
	if err != nil {
		return Suggestion{}, fmt.Errorf("json.Marshal -> %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Suggestion{}, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Suggestion{}, ErrAnalysisFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Suggestion{}, ErrAnalysisFailed
	}

	var suggestion Suggestion
	if err := json.NewDecoder(resp.Body).Decode(&suggestion); err != nil {
		return Suggestion{}, ErrAnalysisFailed
	}

	return suggestion, nil
}
