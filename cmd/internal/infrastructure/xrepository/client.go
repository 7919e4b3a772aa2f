package xrepository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client fetches published code lists from xrepository.de. Lists are
// addressed by their download path under the API root, e.g.
// "urn:xoev-de:xjustiz:codeliste:gds.geschlecht_2.1/download/GDS.Geschlecht_2.1.json".
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL:    "https://www.xrepository.de/api/xrepository/",
		httpClient: &http.Client{},
	}
}

// NewClientWithBaseURL exists for tests against a local server.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

func (c *Client) GetCodeList(ctx context.Context, path string) (*CodeList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("xrepository failed with status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var list listResponse
	err = json.Unmarshal(body, &list)
	if err != nil {
		return nil, err
	}
	return list.toCodeList(), nil
}
