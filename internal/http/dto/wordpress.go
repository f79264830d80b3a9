package dto

import (
	"time"

	"aihub.app/api/internal/model"
	"aihub.app/api/internal/wordpress"
)

type AuthorizeRequest struct {
	RedirectTo string `json:"redirect_to,omitempty" binding:"omitempty,max=2048"`
}

type AuthorizeResponse struct {
	AuthorizationURL string `json:"authorization_url"`
}

type PasswordTokenRequest struct {
	Username string `json:"username" binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=255"`
	Site     string `json:"site,omitempty" binding:"omitempty,max=2048"`
}

type ConnectBasicRequest struct {
	SiteURL     string `json:"site_url" binding:"required,max=2048"`
	Username    string `json:"username" binding:"required,max=255"`
	AppPassword string `json:"app_password" binding:"required,max=255"`
}

type SearchQuery struct {
	Query   string `form:"q" binding:"omitempty,max=255"`
	Page    int    `form:"page" binding:"omitempty,min=1"`
	PerPage int    `form:"per_page" binding:"omitempty,min=1,max=100"`
}

type IntegrationResponse struct {
	SiteURL   string         `json:"site_url"`
	SiteName  *string        `json:"site_name,omitempty"`
	AuthType  model.AuthType `json:"auth_type"`
	ExpiresAt *time.Time     `json:"expires_at,omitempty"`
}

func ToIntegrationResponse(w *model.WordPressIntegration) *IntegrationResponse {
	return &IntegrationResponse{
		SiteURL:   w.SiteURL,
		SiteName:  w.SiteName,
		AuthType:  w.AuthType,
		ExpiresAt: w.TokenExpiresAt,
	}
}

type PostResponse struct {
	ID      int64     `json:"id"`
	Title   string    `json:"title"`
	Excerpt string    `json:"excerpt"`
	Link    string    `json:"link"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`
}

type SearchResponse struct {
	Posts []PostResponse `json:"posts"`
	Page  int            `json:"page"`
}

func ToSearchResponse(posts []wordpress.Post, page int) *SearchResponse {
	out := make([]PostResponse, len(posts))
	for i, p := range posts {
		out[i] = PostResponse{
			ID:      p.ID,
			Title:   p.Title,
			Excerpt: p.Excerpt,
			Link:    p.Link,
			Date:    p.Date,
			Status:  p.Status,
		}
	}
	return &SearchResponse{Posts: out, Page: page}
}
