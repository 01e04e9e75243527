package dto

// CreateMessageRequest for the public guestbook
type CreateMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Content string `json:"content"`
}
