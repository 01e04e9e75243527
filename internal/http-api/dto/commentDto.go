package dto

import (
	"time"

	"bearworld/internal/http-api/models"
)

// CreateCommentRequest ties a comment to exactly one of article_id/project_id
type CreateCommentRequest struct {
	ArticleID *int64 `json:"article_id"`
	ProjectID *int64 `json:"project_id"`
	Content   string `json:"content"`
	ParentID  int64  `json:"parent_id"`
}

// CommentResponse for returning comment information
type CommentResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar"`
	Content   string    `json:"content"`
	ParentID  int64     `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModelToCommentResponse converts a Comment model to CommentResponse DTO
func FromModelToCommentResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        comment.ID,
		Username:  comment.User.Username,
		Avatar:    comment.User.Avatar,
		Content:   comment.Content,
		ParentID:  comment.ParentID,
		CreatedAt: comment.CreatedAt,
	}
}
