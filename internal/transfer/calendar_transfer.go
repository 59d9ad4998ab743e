package transfer

// EventCreation carries the calendar form fields. ScheduledAt uses the
// datetime-local layout "2006-01-02T15:04".
type EventCreation struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Platform       string `json:"platform"`
	ScheduledAt    string `json:"scheduled_at"`
	Status         string `json:"status"`
	AutoPost       bool   `json:"auto_post"`
	MediaURL       string `json:"media_url"`
	Tags           string `json:"tags"`
	OrganizationID *int64 `json:"organization_id"`
	BlogPostID     *int64 `json:"blog_post_id"`
}

// DispatchSummary is the invocation result of one dispatcher tick.
type DispatchSummary struct {
	Attempted int    `json:"attempted"`
	Published int    `json:"published"`
	Failed    int    `json:"failed"`
	Skipped   int    `json:"skipped"`
	Message   string `json:"message"`
}
