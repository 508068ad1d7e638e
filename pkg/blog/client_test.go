package blog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	blogger "google.golang.org/api/blogger/v3"
	"google.golang.org/api/option"
)

func TestClient_Submit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/blogs/42/posts"), "unexpected path %s", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("isDraft"), "posts must be submitted as drafts")

		var post blogger.Post
		require.NoError(t, json.NewDecoder(r.Body).Decode(&post))
		assert.Equal(t, "blogger#post", post.Kind)
		assert.Equal(t, "42", post.Blog.Id)
		assert.Equal(t, "My Title", post.Title)
		assert.Equal(t, "<p>body</p>", post.Content)
		assert.Equal(t, []string{"go", "news"}, post.Labels)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(blogger.Post{Kind: "blogger#post", Id: "9876"}))
	}))
	defer server.Close()

	client, err := NewClient(context.Background(), "42", nil,
		option.WithoutAuthentication(), option.WithEndpoint(server.URL))
	require.NoError(t, err)

	id, err := client.Submit(context.Background(), "My Title", "<p>body</p>", []string{"go", "news"})
	require.NoError(t, err)
	assert.Equal(t, "9876", id)
}

func TestClient_Submit_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"forbidden"}}`, http.StatusForbidden)
	}))
	defer server.Close()

	client, err := NewClient(context.Background(), "42", nil,
		option.WithoutAuthentication(), option.WithEndpoint(server.URL))
	require.NoError(t, err)

	_, err = client.Submit(context.Background(), "T", "C", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert draft post")
}
