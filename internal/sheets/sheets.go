// Package sheets provides the spreadsheet row sources the importer reads
// from: the Google Sheets values API and uploaded xlsx files.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// Client reads rectangular value ranges from the Google Sheets API v4.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	spreadsheetID string
	apiKey        string
}

// NewClient creates a read-only Sheets client for one spreadsheet.
func NewClient(spreadsheetID, apiKey string) *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		baseURL:       defaultBaseURL,
		spreadsheetID: spreadsheetID,
		apiKey:        apiKey,
	}
}

// valueRange mirrors the API response shape; formatted values arrive as
// strings.
type valueRange struct {
	Values [][]string `json:"values"`
}

// Values fetches one range, e.g. "Tareas!A2:Z1000".
func (c *Client) Values(ctx context.Context, rng string) ([][]string, error) {
	endpoint := fmt.Sprintf("%s/%s/values/%s?key=%s",
		c.baseURL,
		url.PathEscape(c.spreadsheetID),
		url.PathEscape(rng),
		url.QueryEscape(c.apiKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("sheets API returned %d: %s", resp.StatusCode, body)
	}

	var vr valueRange
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("failed to decode sheets response: %w", err)
	}
	return vr.Values, nil
}

// RangeSource adapts one named range to the importer's RowSource.
type RangeSource struct {
	client *Client
	rng    string
}

// Range returns a RowSource over the given range.
func (c *Client) Range(rng string) *RangeSource {
	return &RangeSource{client: c, rng: rng}
}

// Rows implements services.RowSource.
func (s *RangeSource) Rows(ctx context.Context) ([][]string, error) {
	return s.client.Values(ctx, s.rng)
}
