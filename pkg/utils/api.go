package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var ErrUnexpectedStatus = errors.New("unexpected status")

type API struct {
	client  *http.Client
	baseURL string
}

func NewAPI(baseURL string, timeout time.Duration) *API {
	return &API{client: &http.Client{Timeout: timeout}, baseURL: baseURL}
}

func (a *API) BaseURL() string {
	return a.baseURL
}

// Get decodes the JSON body of GET baseURL+path into v.
func (a *API) Get(ctx context.Context, path string, params url.Values, v any) error {
	if params != nil {
		path += "?" + params.Encode()
	}
	resp, err := a.Open(ctx, fmt.Sprintf("%s%s", a.baseURL, path), "application/json")
	if err != nil {
		return err
	}
	defer resp.Close()
	if err := json.NewDecoder(resp).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Open issues a GET for an absolute URL and returns the body of a 2xx response.
// The caller closes it.
func (a *API) Open(ctx context.Context, rawURL, accept string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: %w: %d", rawURL, ErrUnexpectedStatus, resp.StatusCode)
	}
	return resp.Body, nil
}
