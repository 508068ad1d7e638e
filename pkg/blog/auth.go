package blog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-pkgz/lgr"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// bloggerScope grants draft-post creation on the user's blogs
const bloggerScope = "https://www.googleapis.com/auth/blogger"

// Authenticate returns a token source for the Blogger API. The persisted
// token is loaded from credsFile; when missing or no longer usable the
// interactive authorization flow runs and the fresh token is persisted.
func Authenticate(ctx context.Context, secretsFile, credsFile string) (oauth2.TokenSource, error) {
	secrets, err := os.ReadFile(secretsFile) //nolint:gosec // file path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("read client secrets %s: %w", secretsFile, err)
	}

	conf, err := google.ConfigFromJSON(secrets, bloggerScope)
	if err != nil {
		return nil, fmt.Errorf("parse client secrets: %w", err)
	}

	tok, err := tokenFromFile(credsFile)
	if err != nil || (!tok.Valid() && tok.RefreshToken == "") {
		tok, err = authorize(ctx, conf)
		if err != nil {
			return nil, fmt.Errorf("authorization failed: %w", err)
		}
		if err := saveToken(credsFile, tok); err != nil {
			lgr.Printf("[WARN] failed to persist token to %s: %v", credsFile, err)
		}
	}

	return conf.TokenSource(ctx, tok), nil
}

// authorize runs the interactive flow: the user opens the printed URL,
// approves access and pastes the authorization code back
func authorize(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error) {
	url := conf.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Open the following URL in a browser and paste the authorization code:\n%s\n> ", url)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("read authorization code: %w", err)
	}

	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return tok, nil
}

// tokenFromFile loads a persisted OAuth token
func tokenFromFile(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("read token file: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("parse token file: %w", err)
	}
	return &tok, nil
}

// saveToken persists the OAuth token for subsequent runs
func saveToken(path string, tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}
