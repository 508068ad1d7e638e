package blog

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	blogger "google.golang.org/api/blogger/v3"
	"google.golang.org/api/option"
)

// Client creates draft posts on a single Blogger blog
type Client struct {
	posts  *blogger.PostsService
	blogID string
}

// NewClient builds an authenticated Blogger client for the given blog.
// Extra options override the defaults, which allows tests to point the
// client at a local server.
func NewClient(ctx context.Context, blogID string, ts oauth2.TokenSource, opts ...option.ClientOption) (*Client, error) {
	clientOpts := opts
	if ts != nil {
		clientOpts = append([]option.ClientOption{option.WithTokenSource(ts)}, opts...)
	}
	svc, err := blogger.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create blogger service: %w", err)
	}
	return &Client{posts: svc.Posts, blogID: blogID}, nil
}

// Submit creates an unpublished draft post and returns its ID
func (c *Client) Submit(ctx context.Context, title, content string, labels []string) (string, error) {
	post := &blogger.Post{
		Kind:    "blogger#post",
		Blog:    &blogger.PostBlog{Id: c.blogID},
		Title:   title,
		Content: content,
		Labels:  labels,
	}

	res, err := c.posts.Insert(c.blogID, post).IsDraft(true).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert draft post: %w", err)
	}
	return res.Id, nil
}
