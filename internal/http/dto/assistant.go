package dto

import "aihub.app/api/internal/model"

// SaveFields ask for the result to be kept as a content item.
type SaveFields struct {
	Save  bool   `json:"save,omitempty"`
	Title string `json:"title,omitempty" binding:"omitempty,max=255"`
}

type ProofreadRequest struct {
	Text string `json:"text" binding:"required,max=100000"`
	SaveFields
}

type ThreadRequest struct {
	Text     string `json:"text" binding:"required,max=100000"`
	Platform string `json:"platform,omitempty" binding:"omitempty,max=64"`
	MaxPosts int    `json:"max_posts,omitempty" binding:"omitempty,min=1,max=50"`
	SaveFields
}

type SummaryRequest struct {
	Text string `json:"text" binding:"required,max=100000"`
	SaveFields
}

type NewsletterRequest struct {
	Text         string  `json:"text,omitempty" binding:"max=100000"`
	PostIDs      []int64 `json:"post_ids,omitempty" binding:"omitempty,max=20,dive,min=1"`
	Instructions string  `json:"instructions,omitempty" binding:"max=5000"`
	SaveFields
}

type ProofreadResponse struct {
	Suggestions []model.Suggestion `json:"suggestions"`
	Content     *ContentResponse   `json:"content,omitempty"`
}

type ThreadResponse struct {
	Posts   []string         `json:"posts"`
	Content *ContentResponse `json:"content,omitempty"`
}

type SummaryResponse struct {
	Summary string           `json:"summary"`
	Content *ContentResponse `json:"content,omitempty"`
}

type NewsletterResponse struct {
	Newsletter string           `json:"newsletter"`
	Content    *ContentResponse `json:"content,omitempty"`
}
