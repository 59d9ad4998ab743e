package publisher

import (
	"context"
	"net/http"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
)

const twitterPostURL = "https://api.twitter.com/2/tweets"

type TwitterPublisher struct {
	Endpoint string
	client   *http.Client
}

func NewTwitterPublisher(client *http.Client) *TwitterPublisher {
	if client == nil {
		client = http.DefaultClient
	}
	return &TwitterPublisher{Endpoint: twitterPostURL, client: client}
}

func (p *TwitterPublisher) Name() string { return models.PlatformTwitter }

func (p *TwitterPublisher) Publish(ctx context.Context, post *Post, accessToken string) error {
	payload := map[string]string{"text": post.Body()}
	return postJSON(ctx, p.client, p.Endpoint, payload, accessToken)
}
