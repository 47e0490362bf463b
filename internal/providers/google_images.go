package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tripdoc/pkg/utils"
)

const imageCandidatesPerQuery = 9

// GoogleImageSearcher queries the Google Custom Search JSON API in image
// mode. BaseURL is overridable for tests.
type GoogleImageSearcher struct {
	HTTP           *http.Client
	APIKey         string
	SearchEngineID string
	BaseURL        string
}

func NewGoogleImageSearcher(apiKey, searchEngineID string) *GoogleImageSearcher {
	return &GoogleImageSearcher{
		HTTP:           &http.Client{Timeout: 15 * time.Second},
		APIKey:         apiKey,
		SearchEngineID: searchEngineID,
		BaseURL:        "https://www.googleapis.com/customsearch/v1",
	}
}

func (c *GoogleImageSearcher) SearchImages(ctx context.Context, query string) ([]string, error) {
	if c.APIKey == "" || c.SearchEngineID == "" {
		return nil, utils.ErrImageSearchUnavailable
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("image search base url: %w", err)
	}
	q := url.Values{}
	q.Set("key", c.APIKey)
	q.Set("cx", c.SearchEngineID)
	q.Set("q", query)
	q.Set("searchType", "image")
	q.Set("num", fmt.Sprintf("%d", imageCandidatesPerQuery))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("image search request: %w", err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image search http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("image search bad status: %s", resp.Status)
	}

	var payload struct {
		Items []struct {
			Link string `json:"link"`
		} `json:"items"`
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("image search decode: %w", err)
	}
	if payload.Error != nil {
		return nil, fmt.Errorf("image search api error %d: %s", payload.Error.Code, payload.Error.Message)
	}

	// No items means no results for this query, not a failure.
	links := make([]string, 0, len(payload.Items))
	for _, item := range payload.Items {
		if item.Link != "" {
			links = append(links, item.Link)
		}
	}
	return links, nil
}
