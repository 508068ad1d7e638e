package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/mrmikeade/reblogger/pkg/content"
)

// maxContentChars bounds the original article text included in the prompt
const maxContentChars = 1500

// systemMsg sets the assistant role for every rewrite request
const systemMsg = "You are a professional content writer."

// defaultPrompt is used for feeds without a custom prompt template
const defaultPrompt = `You are an expert content writer specializing in SEO and original content creation. Rewrite the following article to be unique, engaging, and optimized for SEO. Ensure the content is at least 500 words, includes relevant keywords naturally, and follows best SEO practices (e.g., clear headings, meta description, keyword density of 1-2%). Maintain the core idea but rephrase entirely to avoid plagiarism. If the original content is brief, enrich it with relevant context, such as recent developments, industry trends, or cultural impact, to create a comprehensive article. The tone should be professional yet conversational, suitable for a blog like {BLOG_URL}. Provide a meta description (150-160 characters) and suggest 3-5 SEO keywords.`

// Rewritten is the structured result of a single rewrite call
type Rewritten struct {
	Title           string
	MetaDescription string
	Keywords        string // comma-separated keyword list as produced by the model
	Content         string
}

// Config holds rewrite service settings
type Config struct {
	Endpoint    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Rewriter produces SEO-oriented rewrites of articles via an OpenAI-compatible
// text-generation service. One request is issued per article, with no retry:
// a failed call drops the article for the run.
type Rewriter struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	blogURL     string
	prompts     map[string]string // per-feed prompt templates keyed by feed URL
}

// NewRewriter creates a rewriter for the given blog identity. prompts maps
// feed URLs to custom prompt templates; feeds not present fall back to the
// generic template.
func NewRewriter(cfg Config, blogURL string, prompts map[string]string) *Rewriter {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Rewriter{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
		maxTokens:   cfg.MaxTokens,
		blogURL:     blogURL,
		prompts:     prompts,
	}
}

// Rewrite issues a single rewrite call for the article and parses the
// response into its labeled sections
func (r *Rewriter) Rewrite(ctx context.Context, title, text, sourceURL, feedURL string) (*Rewritten, error) {
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       r.model,
		Temperature: r.temperature,
		MaxTokens:   r.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: r.buildPrompt(title, text, sourceURL, feedURL)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("rewrite request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from llm")
	}

	res := parseRewrite(resp.Choices[0].Message.Content, title)
	return &res, nil
}

// buildPrompt instantiates the feed's prompt template with the blog identity
// and appends the article plus the structured output contract
func (r *Rewriter) buildPrompt(title, text, sourceURL, feedURL string) string {
	base := r.prompts[feedURL]
	if base == "" {
		base = defaultPrompt
	}
	base = strings.ReplaceAll(base, "{BLOG_URL}", r.blogURL)

	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(base))
	sb.WriteString("\n\n")
	sb.WriteString("Original Title: " + title + "\n")
	sb.WriteString("Original Content: " + content.Truncate(text, maxContentChars) + "... (full content may be longer)\n")
	sb.WriteString("Source URL: " + sourceURL + "\n\n")
	sb.WriteString("Output format:\n")
	sb.WriteString("Title: [Rewritten Title]\n")
	sb.WriteString("Meta Description: [SEO-friendly meta description]\n")
	sb.WriteString("Keywords: [3-5 SEO keywords]\n")
	sb.WriteString("Content: [Rewritten article content]")
	return sb.String()
}
