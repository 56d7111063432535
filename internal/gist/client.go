// Package gist implements the document store adapter: a GitHub Gist API
// client plus a TTL cache serving resume document snapshots.
package gist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/daniel/resume-mcp/internal/types"
)

// DefaultTimeout is the HTTP timeout for store requests.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent identifies the service to the store API.
const DefaultUserAgent = "resume-mcp/1.0"

// ResumeFilename is the file the adapter requires inside the bundle.
const ResumeFilename = "resume.json"

// Options configures the store client.
type Options struct {
	APIBase   string
	Token     string
	Timeout   time.Duration
	UserAgent string
}

// Client talks to the gist API. Token is optional for public bundles and
// required for publishing.
type Client struct {
	apiBase   string
	token     string
	userAgent string
	http      *http.Client
}

// NewClient creates a store client. Zero-value option fields fall back to
// package defaults.
func NewClient(opts Options) *Client {
	if opts.APIBase == "" {
		opts.APIBase = "https://api.github.com"
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	return &Client{
		apiBase:   opts.APIBase,
		token:     opts.Token,
		userAgent: opts.UserAgent,
		http:      &http.Client{Timeout: opts.Timeout},
	}
}

// gistResponse mirrors the slice of the gist API response the adapter reads.
type gistResponse struct {
	ID      string              `json:"id"`
	HTMLURL string              `json:"html_url"`
	Files   map[string]gistFile `json:"files"`
}

type gistFile struct {
	Filename  string `json:"filename"`
	Content   string `json:"content"`
	RawURL    string `json:"raw_url"`
	Truncated bool   `json:"truncated"`
}

// FetchResume retrieves the bundle by id, extracts resume.json and decodes
// it. The API truncates large files; those are re-read through their raw URL.
func (c *Client) FetchResume(ctx context.Context, gistID string) (*types.ResumeDocument, error) {
	body, status, err := c.do(ctx, http.MethodGet, c.apiBase+"/gists/"+gistID, nil)
	if err != nil {
		return nil, &FetchError{GistID: gistID, Message: "store request failed", Cause: err}
	}
	if status != http.StatusOK {
		return nil, &FetchError{GistID: gistID, Message: fmt.Sprintf("HTTP status %d", status)}
	}

	var gist gistResponse
	if err := json.Unmarshal(body, &gist); err != nil {
		return nil, &FetchError{GistID: gistID, Message: "invalid store response", Cause: err}
	}

	file, ok := gist.Files[ResumeFilename]
	if !ok {
		return nil, &FetchError{GistID: gistID, Message: fmt.Sprintf("file %s not found in bundle", ResumeFilename)}
	}

	content := []byte(file.Content)
	if file.Truncated {
		content, err = c.fetchRaw(ctx, file.RawURL)
		if err != nil {
			return nil, &FetchError{GistID: gistID, Message: "failed to read truncated file", Cause: err}
		}
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, &ParseError{File: ResumeFilename, Message: "malformed resume document", Cause: err}
	}

	return &doc, nil
}

// GistInfo is the publish result callers care about.
type GistInfo struct {
	ID      string
	HTMLURL string
	RawURL  string
}

// CreateGist publishes a new bundle containing content as resume.json.
func (c *Client) CreateGist(ctx context.Context, description string, public bool, content string) (*GistInfo, error) {
	return c.publish(ctx, http.MethodPost, c.apiBase+"/gists", "", description, public, content)
}

// UpdateGist replaces resume.json in an existing bundle.
func (c *Client) UpdateGist(ctx context.Context, gistID, description string, content string) (*GistInfo, error) {
	return c.publish(ctx, http.MethodPatch, c.apiBase+"/gists/"+gistID, gistID, description, true, content)
}

func (c *Client) publish(ctx context.Context, method, url, gistID, description string, public bool, content string) (*GistInfo, error) {
	payload := map[string]any{
		"description": description,
		"public":      public,
		"files": map[string]any{
			ResumeFilename: map[string]string{"content": content},
		},
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, &FetchError{GistID: gistID, Message: "failed to encode bundle", Cause: err}
	}

	body, status, err := c.do(ctx, method, url, encoded)
	if err != nil {
		return nil, &FetchError{GistID: gistID, Message: "store request failed", Cause: err}
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, &FetchError{GistID: gistID, Message: fmt.Sprintf("HTTP status %d", status)}
	}

	var gist gistResponse
	if err := json.Unmarshal(body, &gist); err != nil {
		return nil, &FetchError{GistID: gistID, Message: "invalid store response", Cause: err}
	}

	info := &GistInfo{ID: gist.ID, HTMLURL: gist.HTMLURL}
	if file, ok := gist.Files[ResumeFilename]; ok {
		info.RawURL = file.RawURL
	}
	return info, nil
}

func (c *Client) do(ctx context.Context, method, url string, payload []byte) ([]byte, int, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, resp.StatusCode, nil
}

// fetchRaw reads a file through its raw URL, bypassing the API's size limit.
func (c *Client) fetchRaw(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
