// Package search wraps the Tavily web-search API used to look up software
// system requirements.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"TechGuideAI/app/common/consts/biz"

	"github.com/zeromicro/go-zero/rest/httpc"
)

const defaultBaseURL = "https://api.tavily.com"

type Conf struct {
	BaseUrl    string `json:",optional"`
	APIKey     string
	TimeoutSec int `json:",default=10"`
}

type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
}

type searchRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type searchResponse struct {
	Results []struct {
		Content string `json:"content"`
	} `json:"results"`
}

func NewClient(c Conf) *Client {
	baseURL := c.BaseUrl
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := time.Duration(c.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  c.APIKey,
		timeout: timeout,
	}
}

// Search returns up to biz.MaxSearchResults text snippets for the query.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := httpc.Do(ctx, http.MethodPost, c.baseURL+"/search", searchRequest{
		APIKey:     c.apiKey,
		Query:      query,
		MaxResults: biz.MaxSearchResults,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search responded %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	snippets := make([]string, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		if r.Content != "" {
			snippets = append(snippets, r.Content)
		}
		if len(snippets) >= biz.MaxSearchResults {
			break
		}
	}
	return snippets, nil
}
