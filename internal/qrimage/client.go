// Package qrimage renders marker identifiers as QR codes through an external
// image service. The service is best-effort: callers always get a usable
// image URL, and only Fetch touches the network.
package qrimage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultSize is the rendered QR edge length in pixels.
const DefaultSize = 220

// Client builds image URLs for marker payloads and optionally fetches the
// rendered PNG.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client against the given QR service base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/",
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// ImageURL returns the URL of the rendered QR code for the given payload.
func (c *Client) ImageURL(payload string, size int) string {
	if size <= 0 {
		size = DefaultSize
	}
	q := url.Values{}
	q.Set("size", fmt.Sprintf("%dx%d", size, size))
	q.Set("data", payload)
	return c.baseURL + "?" + q.Encode()
}

// Fetch downloads the rendered QR PNG for the given payload.
func (c *Client) Fetch(ctx context.Context, payload string, size int) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ImageURL(payload, size), nil)
	if err != nil {
		return nil, fmt.Errorf("build qr request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch qr image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("qr service returned status %d", resp.StatusCode)
	}
	img, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read qr image: %w", err)
	}
	return img, nil
}
