package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// IdentityClient exchanges credentials with the external identity provider.
// Token issuance and verification live entirely on the provider side; this
// client only relays login and signup requests. No retries: a provider
// failure surfaces to the caller as-is.
type IdentityClient struct {
	Domain       string
	ClientID     string
	ClientSecret string
	HTTPClient   *http.Client
}

func NewIdentityClient() *IdentityClient {
	return &IdentityClient{
		Domain:       os.Getenv("PROVIDER_DOMAIN"),
		ClientID:     os.Getenv("CLIENT_ID"),
		ClientSecret: os.Getenv("CLIENT_SECRET"),
		HTTPClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (ic *IdentityClient) post(ctx context.Context, url string, payload map[string]any) (map[string]any, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ic.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return body, fmt.Errorf("identity provider returned %d", resp.StatusCode)
	}
	return body, nil
}

// Login performs the password-grant exchange and returns the provider's
// token response verbatim.
func (ic *IdentityClient) Login(ctx context.Context, email, password string) (map[string]any, error) {
	return ic.post(ctx, fmt.Sprintf("https://%s/oauth/token", ic.Domain), map[string]any{
		"grant_type":    "password",
		"username":      email,
		"password":      password,
		"client_id":     ic.ClientID,
		"client_secret": ic.ClientSecret,
	})
}

// Signup registers the credentials with the provider and returns the
// provider's response; its "_id" field becomes part of the local user's UID.
func (ic *IdentityClient) Signup(ctx context.Context, email, password string) (map[string]any, error) {
	return ic.post(ctx, fmt.Sprintf("https://%s/dbconnections/signup", ic.Domain), map[string]any{
		"connection": "Username-Password-Authentication",
		"email":      email,
		"password":   password,
		"client_id":  ic.ClientID,
	})
}
