package publisher

import (
	"context"
	"net/http"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
)

const linkedinShareURL = "https://api.linkedin.com/v2/shares"

type LinkedinPublisher struct {
	Endpoint string
	client   *http.Client
}

func NewLinkedinPublisher(client *http.Client) *LinkedinPublisher {
	if client == nil {
		client = http.DefaultClient
	}
	return &LinkedinPublisher{Endpoint: linkedinShareURL, client: client}
}

func (p *LinkedinPublisher) Name() string { return models.PlatformLinkedin }

func (p *LinkedinPublisher) Publish(ctx context.Context, post *Post, accessToken string) error {
	payload := map[string]string{"content": post.Body()}
	return postJSON(ctx, p.client, p.Endpoint, payload, accessToken)
}
