package wordpress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

var ErrUnauthorized = errors.New("wordpress rejected the credentials")

// APIError is a non-2xx response from the WordPress REST API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("wordpress api: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("wordpress api: status %d", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	return nil
}

type Site struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type Post struct {
	ID      int64     `json:"id"`
	Title   string    `json:"title"`
	Excerpt string    `json:"excerpt"`
	Content string    `json:"content,omitempty"`
	Link    string    `json:"link"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`
}

type rendered struct {
	Rendered string `json:"rendered"`
}

type restPost struct {
	ID      int64    `json:"id"`
	Date    string   `json:"date_gmt"`
	Link    string   `json:"link"`
	Status  string   `json:"status"`
	Title   rendered `json:"title"`
	Excerpt rendered `json:"excerpt"`
	Content rendered `json:"content"`
}

func (p restPost) toPost() Post {
	post := Post{
		ID:      p.ID,
		Title:   p.Title.Rendered,
		Excerpt: strings.TrimSpace(p.Excerpt.Rendered),
		Content: p.Content.Rendered,
		Link:    p.Link,
		Status:  p.Status,
	}
	// date_gmt carries no zone suffix
	if d, err := time.Parse("2006-01-02T15:04:05", p.Date); err == nil {
		post.Date = d.UTC()
	}
	return post
}

// Client talks to the wp/v2 REST API of a single site.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	siteInfoURL string
	username    string
	password    string
}

// NewBearerClient targets a WordPress.com hosted site through the public API.
func NewBearerClient(ctx context.Context, apiBaseURL, siteID, accessToken string, base *http.Client) *Client {
	if base == nil {
		base = http.DefaultClient
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	apiBaseURL = strings.TrimRight(apiBaseURL, "/")
	return &Client{
		httpClient:  oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})),
		baseURL:     fmt.Sprintf("%s/wp/v2/sites/%s", apiBaseURL, url.PathEscape(siteID)),
		siteInfoURL: fmt.Sprintf("%s/rest/v1.1/sites/%s", apiBaseURL, url.PathEscape(siteID)),
	}
}

// NewBasicClient targets a self-hosted site using an application password.
func NewBasicClient(siteURL, username, appPassword string, base *http.Client) *Client {
	if base == nil {
		base = http.DefaultClient
	}
	siteURL = strings.TrimRight(siteURL, "/")
	return &Client{
		httpClient:  base,
		baseURL:     siteURL + "/wp-json/wp/v2",
		siteInfoURL: siteURL + "/wp-json/",
		username:    username,
		password:    appPassword,
	}
}

func (c *Client) SiteInfo(ctx context.Context) (*Site, error) {
	var site Site
	if err := c.get(ctx, c.siteInfoURL, &site); err != nil {
		return nil, fmt.Errorf("fetch site info: %w", err)
	}
	return &site, nil
}

// Search lists posts matching query. page is 1-based.
func (c *Client) Search(ctx context.Context, query string, page, perPage int) ([]Post, error) {
	params := url.Values{}
	if query != "" {
		params.Set("search", query)
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("_fields", "id,date_gmt,link,status,title,excerpt")

	var raw []restPost
	if err := c.get(ctx, c.baseURL+"/posts?"+params.Encode(), &raw); err != nil {
		// WordPress answers past-the-end pages with 400 rest_post_invalid_page_number
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Code == "rest_post_invalid_page_number" {
			return []Post{}, nil
		}
		return nil, fmt.Errorf("search posts: %w", err)
	}

	posts := make([]Post, len(raw))
	for i, p := range raw {
		posts[i] = p.toPost()
	}
	return posts, nil
}

func (c *Client) GetPost(ctx context.Context, id int64) (*Post, error) {
	var raw restPost
	if err := c.get(ctx, fmt.Sprintf("%s/posts/%d", c.baseURL, id), &raw); err != nil {
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}
	post := raw.toPost()
	return &post, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Code    string `json:"code"`
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Code = payload.Code
			if apiErr.Code == "" {
				apiErr.Code = payload.Error
			}
			apiErr.Message = payload.Message
		}
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
