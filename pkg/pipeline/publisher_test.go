package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrmikeade/reblogger/pkg/llm"
	"github.com/mrmikeade/reblogger/pkg/pipeline/mocks"
)

func TestPublisher_Publish(t *testing.T) {
	submitter := &mocks.SubmitterMock{
		SubmitFunc: func(_ context.Context, _, _ string, _ []string) (string, error) {
			return "post-1", nil
		},
	}
	stats := NewStats()
	p := NewPublisher(submitter, stats)

	article := &llm.Rewritten{
		Title:    "Fresh Headline",
		Keywords: "go, news, tooling",
		Content:  "rewritten body text",
	}

	id, err := p.Publish(context.Background(), article, "Tech_Feed", "", "https://example.com/src")
	require.NoError(t, err)
	assert.Equal(t, "post-1", id)

	require.Len(t, submitter.SubmitCalls(), 1)
	call := submitter.SubmitCalls()[0]
	assert.Equal(t, "Fresh Headline", call.Title)
	assert.Contains(t, call.Content, "rewritten body text")
	assert.Contains(t, call.Content, `<small>Source: <a href="https://example.com/src">Tech_Feed</a></small>`, "attribution always appended")
	assert.Equal(t, []string{"go", "news", "tooling"}, call.Labels)

	snap := stats.Snapshot()
	assert.Equal(t, 1, snap.ArticlesPosted)
	assert.Equal(t, 0, snap.ImagesIncluded, "no image, no image counter")
}

func TestPublisher_Publish_WithImage(t *testing.T) {
	submitter := &mocks.SubmitterMock{
		SubmitFunc: func(_ context.Context, _, _ string, _ []string) (string, error) {
			return "post-2", nil
		},
	}
	stats := NewStats()
	p := NewPublisher(submitter, stats)

	article := &llm.Rewritten{Title: "With Image", Content: "body"}
	_, err := p.Publish(context.Background(), article, "Feed", "https://example.com/pic.jpg", "https://example.com/src")
	require.NoError(t, err)

	call := submitter.SubmitCalls()[0]
	assert.Contains(t, call.Content, `<img src="https://example.com/pic.jpg"`)
	assert.Contains(t, call.Content, `alt="With Image"`)
	assert.True(t, len(call.Content) > 0 && call.Content[0] == '<', "image element prepended to the body")
	assert.Equal(t, 1, stats.Snapshot().ImagesIncluded)
}

func TestPublisher_Publish_DefaultLabel(t *testing.T) {
	submitter := &mocks.SubmitterMock{
		SubmitFunc: func(_ context.Context, _, _ string, _ []string) (string, error) {
			return "post-3", nil
		},
	}
	p := NewPublisher(submitter, NewStats())

	article := &llm.Rewritten{Title: "No Keywords", Content: "body"}
	_, err := p.Publish(context.Background(), article, "Feed", "", "https://example.com/src")
	require.NoError(t, err)

	assert.Equal(t, []string{"News"}, submitter.SubmitCalls()[0].Labels)
}

func TestPublisher_Publish_RejectsIncomplete(t *testing.T) {
	submitter := &mocks.SubmitterMock{
		SubmitFunc: func(_ context.Context, _, _ string, _ []string) (string, error) {
			return "never", nil
		},
	}
	stats := NewStats()
	p := NewPublisher(submitter, stats)

	tests := []struct {
		name    string
		article *llm.Rewritten
	}{
		{"nil article", nil},
		{"empty title", &llm.Rewritten{Content: "body"}},
		{"empty content", &llm.Rewritten{Title: "T"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Publish(context.Background(), tt.article, "Feed", "", "https://example.com/src")
			require.Error(t, err)
		})
	}

	assert.Empty(t, submitter.SubmitCalls(), "invalid articles rejected before contacting the service")
	assert.Equal(t, 0, stats.Snapshot().ArticlesPosted)
}

func TestPublisher_Publish_SubmitError(t *testing.T) {
	submitter := &mocks.SubmitterMock{
		SubmitFunc: func(_ context.Context, _, _ string, _ []string) (string, error) {
			return "", fmt.Errorf("service unavailable")
		},
	}
	stats := NewStats()
	p := NewPublisher(submitter, stats)

	article := &llm.Rewritten{Title: "T", Content: "body"}
	_, err := p.Publish(context.Background(), article, "Feed", "https://example.com/pic.png", "https://example.com/src")
	require.Error(t, err)

	snap := stats.Snapshot()
	assert.Equal(t, 0, snap.ArticlesPosted, "failed submission is not counted as posted")
	assert.Equal(t, 1, snap.ImagesIncluded, "image counted at assembly time")
}

func TestPublisher_Publish_SanitizesContent(t *testing.T) {
	submitter := &mocks.SubmitterMock{
		SubmitFunc: func(_ context.Context, _, _ string, _ []string) (string, error) {
			return "post-4", nil
		},
	}
	p := NewPublisher(submitter, NewStats())

	article := &llm.Rewritten{Title: "T", Content: `safe text <script>alert("x")</script> more`}
	_, err := p.Publish(context.Background(), article, "Feed", "", "https://example.com/src")
	require.NoError(t, err)

	content := submitter.SubmitCalls()[0].Content
	assert.NotContains(t, content, "<script>")
	assert.Contains(t, content, "safe text")
}
