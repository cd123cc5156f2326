package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPProvider submits credentials to an external identity provider
// over HTTP. Any failure it reports is a ProviderError; the transport
// and the provider are one collaborator from the pipeline's
// perspective.
type HTTPProvider struct {
	client   *http.Client
	url      string
	apiToken string
}

func NewHTTPProvider(url, apiToken string) *HTTPProvider {
	return &HTTPProvider{
		client:   &http.Client{Timeout: 10 * time.Second},
		url:      url,
		apiToken: apiToken,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

func (p *HTTPProvider) Authenticate(ctx context.Context, creds Credentials) (*Identity, error) {
	body, err := json.Marshal(loginRequest{Email: creds.Email, Password: creds.Password})
	if err != nil {
		return nil, fmt.Errorf("encoding credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if p.apiToken != "" {
		req.Header.Set("Authorization", "Token "+p.apiToken)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Kind: FailureUnavailable, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &ProviderError{
			Kind: FailureInvalidCredentials,
			Err:  fmt.Errorf("credentials rejected with status %d", resp.StatusCode),
		}
	default:
		return nil, &ProviderError{
			Kind: FailureUnavailable,
			Err:  fmt.Errorf("unexpected status code %d", resp.StatusCode),
		}
	}

	var ident loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&ident); err != nil {
		return nil, &ProviderError{Kind: FailureUnavailable, Err: fmt.Errorf("decoding response: %w", err)}
	}

	return &Identity{UserID: ident.UserID, Email: ident.Email, Name: ident.Name}, nil
}
