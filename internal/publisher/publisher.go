package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Publisher posts one calendar event to a single external platform.
// Implementations are selected through the Registry, so supporting a new
// platform means adding a variant, not editing a branch chain.
type Publisher interface {
	Name() string
	Publish(ctx context.Context, post *Post, accessToken string) error
}

// Post is the platform-independent content of an outbound social post.
type Post struct {
	Title       string
	Description string
	MediaURL    string
}

// Body is the "{title}\n{description}" text every platform payload carries.
func (p *Post) Body() string {
	return p.Title + "\n" + p.Description
}

// Registry maps lower-cased platform names to their Publisher.
type Registry struct {
	publishers map[string]Publisher
}

func NewRegistry(publishers ...Publisher) *Registry {
	r := &Registry{publishers: make(map[string]Publisher, len(publishers))}
	for _, p := range publishers {
		r.publishers[strings.ToLower(p.Name())] = p
	}
	return r
}

// Lookup is case-insensitive; platforms without a Publisher (instagram,
// tiktok) return false and are skipped by the dispatcher.
func (r *Registry) Lookup(platform string) (Publisher, bool) {
	p, ok := r.publishers[strings.ToLower(platform)]
	return p, ok
}

// postJSON issues the bearer-authorized JSON POST shared by all platforms.
// Any 2xx response counts as success.
func postJSON(ctx context.Context, client *http.Client, endpoint string, payload any, accessToken string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("platform returned status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
