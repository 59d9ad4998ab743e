package transfer

type TaskCreation struct {
	OrganizationID int64  `json:"organization_id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	AssigneeID     *int64 `json:"assignee_id"`
	DueDate        string `json:"due_date"`
}

type BlogPostCreation struct {
	OrganizationID int64  `json:"organization_id"`
	Title          string `json:"title"`
	Slug           string `json:"slug"`
	Content        string `json:"content"`
	ImageURL       string `json:"image_url"`
	Status         string `json:"status"`
	PublishAt      string `json:"publish_at"`
}

type TokenUpsert struct {
	Platform    string `json:"platform"`
	AccessToken string `json:"access_token"`
	ExpiresAt   string `json:"expires_at"`
}

type IntakeSubmission struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	ProjectType string `json:"project_type"`
	Budget      string `json:"budget"`
	Details     string `json:"details"`
}

type AnalyticsUpdate struct {
	OrganizationID int64  `json:"organization_id"`
	Provider       string `json:"provider"`
	PropertyID     string `json:"property_id"`
	APIKey         string `json:"api_key"`
}

type AnalyticsInfo struct {
	OrganizationID int64  `json:"organization_id"`
	Provider       string `json:"provider"`
	PropertyID     string `json:"property_id"`
}
