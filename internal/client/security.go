package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/fivetwenty-io/artifactory/internal/http"
	"github.com/fivetwenty-io/artifactory/pkg/artifactory"
)

const (
	encryptedPasswordPath = "api/security/encryptedPassword"
	tokenPath             = "api/security/token"
	tokenRevokePath       = "api/security/token/revoke"
	apiKeyPath            = "api/security/apiKey"
)

// SecurityClient implements artifactory.SecurityClient.
type SecurityClient struct {
	httpClient *http.Client
	logger     hclog.Logger
}

// NewSecurityClient creates a new security client.
func NewSecurityClient(httpClient *http.Client, logger hclog.Logger) *SecurityClient {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &SecurityClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// GetEncryptedPassword implements artifactory.SecurityClient.GetEncryptedPassword.
func (c *SecurityClient) GetEncryptedPassword(ctx context.Context) (*artifactory.EncryptedPassword, error) {
	resp, err := c.httpClient.Get(ctx, encryptedPasswordPath, nil)
	if err != nil {
		return nil, fmt.Errorf("getting encrypted password: %w", err)
	}

	var password artifactory.EncryptedPassword

	err = json.Unmarshal(resp.Body, &password)
	if err != nil {
		return nil, fmt.Errorf("parsing encrypted password: %w", err)
	}

	return &password, nil
}

// CreateAccessToken implements artifactory.SecurityClient.CreateAccessToken.
func (c *SecurityClient) CreateAccessToken(ctx context.Context, request *artifactory.AccessTokenRequest) (*artifactory.AccessToken, error) {
	err := request.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating token request: %w", err)
	}

	form := url.Values{
		"username":    []string{request.Username},
		"expires_in":  []string{strconv.Itoa(request.ExpiresIn)},
		"refreshable": []string{strconv.FormatBool(request.Refreshable)},
	}

	if len(request.Groups) > 0 {
		form.Set("scope", fmt.Sprintf("member-of-groups:%q", strings.Join(request.Groups, ", ")))
	}

	resp, err := c.httpClient.PostForm(ctx, tokenPath, form)
	if err != nil {
		if resp != nil {
			return nil, &artifactory.TokenError{Message: tokenErrorDescription(resp.Body)}
		}

		return nil, fmt.Errorf("creating access token: %w", err)
	}

	var token artifactory.AccessToken

	err = json.Unmarshal(resp.Body, &token)
	if err != nil {
		return nil, fmt.Errorf("parsing access token: %w", err)
	}

	c.logger.Debug("access token created", "username", request.Username)

	return &token, nil
}

// tokenErrorDescription extracts error_description from a token endpoint
// failure body.
func tokenErrorDescription(body []byte) string {
	var payload struct {
		ErrorDescription string `json:"error_description"`
	}

	err := json.Unmarshal(body, &payload)
	if err != nil || payload.ErrorDescription == "" {
		return "unknown error"
	}

	return payload.ErrorDescription
}

// RevokeAccessToken implements artifactory.SecurityClient.RevokeAccessToken.
// Revoking an absent token is not an error; the returned flag reports
// whether the endpoint accepted the revocation.
func (c *SecurityClient) RevokeAccessToken(ctx context.Context, request *artifactory.RevokeTokenRequest) (bool, error) {
	err := request.Validate()
	if err != nil {
		return false, err
	}

	form := url.Values{}
	if request.Token != "" {
		form.Set("token", request.Token)
	} else {
		form.Set("token_id", request.TokenID)
	}

	resp, err := c.httpClient.PostForm(ctx, tokenRevokePath, form)
	if err != nil {
		if resp != nil {
			c.logger.Debug("token revocation rejected", "status", resp.StatusCode)

			return false, nil
		}

		return false, fmt.Errorf("revoking access token: %w", err)
	}

	c.logger.Debug("token revoked, or token did not exist")

	return true, nil
}

// CreateAPIKey implements artifactory.SecurityClient.CreateAPIKey.
func (c *SecurityClient) CreateAPIKey(ctx context.Context) (*artifactory.APIKey, error) {
	resp, err := c.httpClient.Post(ctx, apiKeyPath, nil)
	if err != nil {
		return nil, fmt.Errorf("creating API key: %w", err)
	}

	return parseAPIKey(resp.Body)
}

// RegenerateAPIKey implements artifactory.SecurityClient.RegenerateAPIKey.
func (c *SecurityClient) RegenerateAPIKey(ctx context.Context) (*artifactory.APIKey, error) {
	resp, err := c.httpClient.Put(ctx, apiKeyPath, nil)
	if err != nil {
		return nil, fmt.Errorf("regenerating API key: %w", err)
	}

	return parseAPIKey(resp.Body)
}

// GetAPIKey implements artifactory.SecurityClient.GetAPIKey.
func (c *SecurityClient) GetAPIKey(ctx context.Context) (*artifactory.APIKey, error) {
	resp, err := c.httpClient.Get(ctx, apiKeyPath, nil)
	if err != nil {
		return nil, fmt.Errorf("getting API key: %w", err)
	}

	return parseAPIKey(resp.Body)
}

// RevokeAPIKey implements artifactory.SecurityClient.RevokeAPIKey.
func (c *SecurityClient) RevokeAPIKey(ctx context.Context) error {
	_, err := c.httpClient.Delete(ctx, apiKeyPath)
	if err != nil {
		return fmt.Errorf("revoking API key: %w", err)
	}

	c.logger.Debug("API key revoked")

	return nil
}

// RevokeUserAPIKey implements artifactory.SecurityClient.RevokeUserAPIKey.
func (c *SecurityClient) RevokeUserAPIKey(ctx context.Context, name string) error {
	_, err := c.httpClient.Delete(ctx, apiKeyPath+"/"+name)
	if err != nil {
		return fmt.Errorf("revoking user API key: %w", err)
	}

	c.logger.Debug("user API key revoked", "name", name)

	return nil
}

func parseAPIKey(body []byte) (*artifactory.APIKey, error) {
	var key artifactory.APIKey

	err := json.Unmarshal(body, &key)
	if err != nil {
		return nil, fmt.Errorf("parsing API key: %w", err)
	}

	return &key, nil
}
