package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Feed describes a single source feed and its optional custom rewrite prompt.
// The prompt may reference the blog's public URL via the {BLOG_URL} placeholder.
type Feed struct {
	URL    string `yaml:"url"`
	Prompt string `yaml:"prompt"`
}

// Config holds the application configuration
type Config struct {
	Feeds []Feed `yaml:"feeds"`

	LLM struct {
		Endpoint    string        `yaml:"endpoint"`
		APIKey      string        `yaml:"api_key"`
		Model       string        `yaml:"model"`
		Temperature float64       `yaml:"temperature"`
		MaxTokens   int           `yaml:"max_tokens"`
		Timeout     time.Duration `yaml:"timeout"`
	} `yaml:"llm"`

	Blog struct {
		ID                string `yaml:"id"`
		URL               string `yaml:"url"`
		CredentialsFile   string `yaml:"credentials_file"`
		ClientSecretsFile string `yaml:"client_secrets_file"`
	} `yaml:"blog"`

	Pipeline struct {
		ArticlesPerFeed int           `yaml:"articles_per_feed"`
		MinWordCount    int           `yaml:"min_word_count"`
		MaxWorkers      int           `yaml:"max_workers"`
		ArticleDelay    time.Duration `yaml:"article_delay"`
		FetchTimeout    time.Duration `yaml:"fetch_timeout"`
		SkipLog         string        `yaml:"skip_log"`
		SummaryDir      string        `yaml:"summary_dir"`
	} `yaml:"pipeline"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for LLM
	if cfg.LLM.Endpoint == "" {
		cfg.LLM.Endpoint = "https://api.groq.com/openai/v1"
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "llama3-70b-8192"
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.7
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 2000
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 60 * time.Second
	}

	// set defaults for blog credentials
	if cfg.Blog.CredentialsFile == "" {
		cfg.Blog.CredentialsFile = "blogger_credentials.json"
	}
	if cfg.Blog.ClientSecretsFile == "" {
		cfg.Blog.ClientSecretsFile = "client_secrets.json"
	}

	// set defaults for pipeline
	if cfg.Pipeline.ArticlesPerFeed == 0 {
		cfg.Pipeline.ArticlesPerFeed = 4
	}
	if cfg.Pipeline.MinWordCount == 0 {
		cfg.Pipeline.MinWordCount = 15
	}
	if cfg.Pipeline.MaxWorkers == 0 {
		cfg.Pipeline.MaxWorkers = 3
	}
	if cfg.Pipeline.ArticleDelay == 0 {
		cfg.Pipeline.ArticleDelay = 3 * time.Second
	}
	if cfg.Pipeline.FetchTimeout == 0 {
		cfg.Pipeline.FetchTimeout = 30 * time.Second
	}
	if cfg.Pipeline.SkipLog == "" {
		cfg.Pipeline.SkipLog = "skipped_articles.txt"
	}
	if cfg.Pipeline.SummaryDir == "" {
		cfg.Pipeline.SummaryDir = "."
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if len(cfg.Feeds) == 0 {
		return fmt.Errorf("at least one feed is required")
	}
	for i, f := range cfg.Feeds {
		if f.URL == "" {
			return fmt.Errorf("feeds[%d].url is required", i)
		}
	}

	if cfg.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	if cfg.Blog.ID == "" {
		return fmt.Errorf("blog.id is required")
	}
	if cfg.Blog.URL == "" {
		return fmt.Errorf("blog.url is required")
	}

	if cfg.Pipeline.ArticlesPerFeed < 1 {
		return fmt.Errorf("pipeline.articles_per_feed must be at least 1")
	}
	if cfg.Pipeline.MaxWorkers < 1 {
		return fmt.Errorf("pipeline.max_workers must be at least 1")
	}

	return nil
}

// Prompts returns the per-feed prompt templates keyed by feed URL,
// omitting feeds without a custom prompt
func (c *Config) Prompts() map[string]string {
	res := make(map[string]string)
	for _, f := range c.Feeds {
		if f.Prompt != "" {
			res[f.URL] = f.Prompt
		}
	}
	return res
}
