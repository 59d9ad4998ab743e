package publisher

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	registry := NewRegistry(
		NewTwitterPublisher(nil),
		NewFacebookPublisher(nil),
		NewLinkedinPublisher(nil),
	)

	for _, platform := range []string{"twitter", "Twitter", "FACEBOOK", "linkedin"} {
		pub, ok := registry.Lookup(platform)
		assert.True(t, ok, platform)
		assert.NotNil(t, pub)
	}

	for _, platform := range []string{"instagram", "tiktok", "myspace", ""} {
		_, ok := registry.Lookup(platform)
		assert.False(t, ok, platform)
	}
}

func TestDefaultEndpoints(t *testing.T) {
	assert.Equal(t, "https://api.twitter.com/2/tweets", NewTwitterPublisher(nil).Endpoint)
	assert.Equal(t, "https://graph.facebook.com/me/feed", NewFacebookPublisher(nil).Endpoint)
	assert.Equal(t, "https://api.linkedin.com/v2/shares", NewLinkedinPublisher(nil).Endpoint)
}

func TestPublishSendsBearerJSON(t *testing.T) {
	var gotAuth, gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	pub := NewLinkedinPublisher(nil)
	pub.Endpoint = srv.URL

	post := &Post{Title: "Launch", Description: "We shipped!"}
	err := pub.Publish(context.Background(), post, "secret-token")
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"content":"Launch\nWe shipped!"}`, gotBody)
}

func TestPublishNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token expired"}`))
	}))
	defer srv.Close()

	pub := NewTwitterPublisher(nil)
	pub.Endpoint = srv.URL

	err := pub.Publish(context.Background(), &Post{Title: "x"}, "stale")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "token expired")
}

func TestPostBody(t *testing.T) {
	post := &Post{Title: "Launch", Description: "We shipped!"}
	assert.Equal(t, "Launch\nWe shipped!", post.Body())

	empty := &Post{Title: "Only title"}
	assert.Equal(t, "Only title\n", empty.Body())
}
