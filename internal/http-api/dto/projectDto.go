package dto

// CreateProjectRequest for creating a project
type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Image       string `json:"image"`
	DemoURL     string `json:"demo_url"`
	GithubURL   string `json:"github_url"`
	TechStack   string `json:"tech_stack"`
	Featured    bool   `json:"featured"`
}

// UpdateProjectRequest shares the create shape; a full replace like the
// original PUT semantics.
type UpdateProjectRequest = CreateProjectRequest
