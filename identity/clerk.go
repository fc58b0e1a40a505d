package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ClerkProvider verifies session tokens locally and fetches profiles
// from the provider's backend API.
type ClerkProvider struct {
	secret    []byte // shared HMAC secret for session tokens
	apiURL    string
	apiSecret string
	client    *http.Client
}

// NewClerkProvider builds a provider from the configured secrets.
func NewClerkProvider(jwtSecret, apiURL, apiSecret string) *ClerkProvider {
	return &ClerkProvider{
		secret:    []byte(jwtSecret),
		apiURL:    apiURL,
		apiSecret: apiSecret,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// ResolveCaller parses and validates the session token and returns its
// subject claim.
func (p *ClerkProvider) ResolveCaller(ctx context.Context, credential string) (string, error) {
	if credential == "" || len(p.secret) == 0 {
		return "", ErrUnauthenticated
	}

	token, err := jwt.Parse(credential, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrUnauthenticated
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrUnauthenticated
	}
	return sub, nil
}

// FetchProfile calls the provider's users endpoint. The response uses
// the same user shape as webhook events.
func (p *ClerkProvider) FetchProfile(ctx context.Context, subjectID string) (Profile, error) {
	u := fmt.Sprintf("%s/users/%s", p.apiURL, subjectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiSecret)

	resp, err := p.client.Do(req)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to call identity provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("identity provider error %d: %s", resp.StatusCode, string(body))
	}

	var cu EventUser
	if err := json.Unmarshal(body, &cu); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return Profile{ID: cu.ID, Name: cu.FullName(), Email: cu.PrimaryEmail()}, nil
}
