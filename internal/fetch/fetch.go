// Package fetch retrieves source image bytes from a local path or an
// http(s) URL, with a byte cap so a hostile or mistaken source cannot make
// the pipeline buffer arbitrary amounts of data.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// DefaultMaxBytes caps how much image data one fetch will buffer.
	DefaultMaxBytes = 15 << 20 // 15 MiB

	// DefaultTimeout bounds one HTTP fetch end to end.
	DefaultTimeout = 12 * time.Second

	defaultUserAgent = "ascii-art-bot/1.0"
)

// Client fetches source bytes. The zero value uses the defaults above.
type Client struct {
	MaxBytes   int64
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
}

// Source reads src, which is either an http(s) URL or a local file path.
func (c *Client) Source(src string) ([]byte, error) {
	if isHTTP(src) {
		return c.fetchURL(src)
	}
	return c.readFile(src)
}

func isHTTP(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func (c *Client) maxBytes() int64 {
	if c.MaxBytes > 0 {
		return c.MaxBytes
	}
	return DefaultMaxBytes
}

func (c *Client) readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return c.readCapped(f, path)
}

func (c *Client) fetchURL(u string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	ua := c.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", "image/*;q=0.8,*/*;q=0.5")

	client := c.HTTPClient
	if client == nil {
		timeout := c.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: http status %s", u, resp.Status)
	}

	return c.readCapped(resp.Body, u)
}

func (c *Client) readCapped(r io.Reader, label string) ([]byte, error) {
	limit := c.maxBytes()
	lr := &io.LimitedReader{R: r, N: limit + 1}
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("fetch %s: source larger than %d bytes", label, limit)
	}
	return data, nil
}
