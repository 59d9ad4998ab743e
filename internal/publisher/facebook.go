package publisher

import (
	"context"
	"net/http"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
)

const facebookFeedURL = "https://graph.facebook.com/me/feed"

type FacebookPublisher struct {
	Endpoint string
	client   *http.Client
}

func NewFacebookPublisher(client *http.Client) *FacebookPublisher {
	if client == nil {
		client = http.DefaultClient
	}
	return &FacebookPublisher{Endpoint: facebookFeedURL, client: client}
}

func (p *FacebookPublisher) Name() string { return models.PlatformFacebook }

func (p *FacebookPublisher) Publish(ctx context.Context, post *Post, accessToken string) error {
	payload := map[string]string{"message": post.Body()}
	return postJSON(ctx, p.client, p.Endpoint, payload, accessToken)
}
