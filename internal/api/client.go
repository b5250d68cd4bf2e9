// Package api fetches the home document from the site back-end.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lodestone-studio/lodestone/internal/logger"
	lodestoneerrors "github.com/lodestone-studio/lodestone/pkg/errors"
)

const (
	// DefaultBaseURL is the development back-end.
	DefaultBaseURL = "http://localhost:5000/"
	// DefaultTimeout bounds a whole request.
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 4 << 20
)

// Project is one project record of the home document.
type Project struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HomeData is the home document.
type HomeData struct {
	Title     string    `json:"title"`
	IntroText string    `json:"introText"`
	Projects  []Project `json:"projects"`
}

// Options configures a Client. Zero values fall back to the defaults.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	Logger     *logger.Logger
	HTTPClient *http.Client
}

// Client issues GET requests against the back-end. It is safe for
// concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// New validates the base URL and builds a client.
func New(opts Options) (*Client, error) {
	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", base, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", base)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		baseURL: parsed.String(),
		http:    httpClient,
		log:     log.With("component", "api"),
	}, nil
}

// BaseURL returns the URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchHome issues one GET for the home document. Transport failures and
// non-2xx answers return *errors.FetchError; an unreadable body returns
// *errors.DecodeError. There are no retries.
func (c *Client) FetchHome(ctx context.Context) (HomeData, error) {
	var data HomeData
	if err := c.get(ctx, c.baseURL, &data); err != nil {
		return HomeData{}, err
	}
	return data, nil
}

func (c *Client) get(ctx context.Context, target string, out any) error {
	if ctx == nil {
		ctx = context.Background()
	}
	requestID := uuid.NewString()
	log := c.log.WithFields(map[string]any{"url": target, "request_id": requestID})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return lodestoneerrors.NewFetchError(target, 0, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	started := time.Now()
	log.Debug("fetch started")

	resp, err := c.http.Do(req)
	if err != nil {
		log.With("elapsed", time.Since(started).String()).Debug("fetch failed")
		return lodestoneerrors.NewFetchError(target, 0, err)
	}
	defer resp.Body.Close()

	log = log.With("status", resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		log.Debug("fetch rejected")
		return lodestoneerrors.NewFetchError(target, resp.StatusCode, nil)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		log.Debug("fetch decode failed")
		return lodestoneerrors.NewDecodeError(target, err)
	}

	log.With("elapsed", time.Since(started).String()).Debug("fetch finished")
	return nil
}

// Close releases idle connections held by the client.
func (c *Client) Close() {
	if c == nil || c.http == nil {
		return
	}
	c.http.CloseIdleConnections()
}
