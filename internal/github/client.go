// Package github writes files to a repository through GitHub's Contents API.
package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/quickpost/publisher/pkg/metrics"
)

const (
	DefaultAPIURL    = "https://api.github.com"
	DefaultUserAgent = "quickpost-publisher"
	DefaultTimeout   = 10 * time.Second

	// maxErrorBody bounds how much of a failed response is kept for the error message.
	maxErrorBody = 64 << 10
)

// Options configures a Client. Zero values fall back to the defaults above.
type Options struct {
	APIURL     string
	Repo       string // owner/repo
	Token      string
	Branch     string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client creates files in a single repository.
type Client struct {
	apiURL     string
	repo       string
	token      string
	branch     string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient creates a Contents API client for opts.Repo.
func NewClient(opts Options) *Client {
	c := &Client{
		apiURL:     strings.TrimRight(opts.APIURL, "/"),
		repo:       strings.Trim(opts.Repo, "/"),
		token:      opts.Token,
		branch:     opts.Branch,
		userAgent:  opts.UserAgent,
		timeout:    opts.Timeout,
		httpClient: opts.HTTPClient,
	}
	if c.apiURL == "" {
		c.apiURL = DefaultAPIURL
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	return c
}

// Repo returns the owner/repo the client writes to.
func (c *Client) Repo() string { return c.repo }

type createFileRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch,omitempty"`
}

// CommitResult is the subset of the Contents API response worth keeping.
// Fields stay empty when GitHub's response could not be decoded.
type CommitResult struct {
	Path      string
	HTMLURL   string
	CommitSHA string
}

type createFileResponse struct {
	Content struct {
		Path    string `json:"path"`
		HTMLURL string `json:"html_url"`
	} `json:"content"`
	Commit struct {
		SHA string `json:"sha"`
	} `json:"commit"`
}

// CommitMessage is the message used for every file created at path.
func CommitMessage(path string) string {
	return "Add " + path
}

func (c *Client) contentsURL(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return fmt.Sprintf("%s/repos/%s/contents/%s", c.apiURL, c.repo, strings.Join(segments, "/"))
}

// CreateFile commits content at path with the message "Add {path}".
// The call is made once under the client timeout. It never sends a blob sha,
// so GitHub rejects the write when path already exists.
// Any failure is returned as *RemoteWriteError.
func (c *Client) CreateFile(ctx context.Context, path, content string) (*CommitResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(&createFileRequest{
		Message: CommitMessage(path),
		Content: base64.StdEncoding.EncodeToString([]byte(content)),
		Branch:  c.branch,
	})
	if err != nil {
		return nil, &RemoteWriteError{Path: path, Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.contentsURL(path), bytes.NewReader(body))
	if err != nil {
		return nil, &RemoteWriteError{Path: path, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Authorization", "token "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.GitHubWrites.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, &RemoteWriteError{Path: path, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer resp.Body.Close()
	metrics.GitHubWrites.WithLabelValues(statusClass(resp.StatusCode)).Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &RemoteWriteError{Path: path, Status: resp.StatusCode, Body: string(b)}
	}

	result := &CommitResult{Path: path}
	var decoded createFileResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err == nil {
		result.HTMLURL = decoded.Content.HTMLURL
		result.CommitSHA = decoded.Commit.SHA
	}
	return result, nil
}

func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}
