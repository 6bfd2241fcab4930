package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrAccountNotFound is returned by Lookup when the provider has no
// account with the requested id.
var ErrAccountNotFound = errors.New("identity: account not found")

// HTTPProvider implements Provider against the provider's admin REST API.
// All requests carry the service API key and are bounded by the client
// timeout in addition to any caller-supplied context deadline.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPProvider builds a client for the admin API at baseURL.
func NewHTTPProvider(baseURL, apiKey string) *HTTPProvider {
	return &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *HTTPProvider) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return p.client.Do(req)
}

// Lookup fetches an account by id.
func (p *HTTPProvider) Lookup(ctx context.Context, id string) (Account, error) {
	resp, err := p.do(ctx, http.MethodGet, "/accounts/"+url.PathEscape(id), nil)
	if err != nil {
		return Account{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var acct Account
		if err := json.NewDecoder(resp.Body).Decode(&acct); err != nil {
			return Account{}, err
		}
		return acct, nil
	case http.StatusNotFound:
		return Account{}, ErrAccountNotFound
	default:
		return Account{}, fmt.Errorf("identity: lookup %s: status %d", id, resp.StatusCode)
	}
}

// Create registers a new account with a credential.
func (p *HTTPProvider) Create(ctx context.Context, acct Account, password string) error {
	payload := struct {
		Account
		Password string `json:"password"`
	}{Account: acct, Password: password}
	resp, err := p.do(ctx, http.MethodPost, "/accounts", payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("identity: create %s: status %d", acct.ID, resp.StatusCode)
	}
	return nil
}

// UpdateEmail changes only the email of an existing account.
func (p *HTTPProvider) UpdateEmail(ctx context.Context, id, email string) error {
	resp, err := p.do(ctx, http.MethodPatch, "/accounts/"+url.PathEscape(id),
		map[string]string{"email": email})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("identity: update %s: status %d", id, resp.StatusCode)
	}
	return nil
}
