package artifactory

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// EncryptedPassword is the encrypted password of the authenticated
// requestor.
type EncryptedPassword struct {
	Password string `json:"password" yaml:"password"`
}

// APIKey is an Artifactory API key.
type APIKey struct {
	APIKey string `json:"apiKey" yaml:"apiKey"`
}

// AccessToken is the token endpoint's success response.
type AccessToken struct {
	AccessToken  string `json:"access_token"            yaml:"access_token"`
	ExpiresIn    int    `json:"expires_in"              yaml:"expires_in"`
	Scope        string `json:"scope,omitempty"         yaml:"scope,omitempty"`
	TokenType    string `json:"token_type,omitempty"    yaml:"token_type,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty" yaml:"refresh_token,omitempty"`
}

// AccessTokenRequest describes an access token to create. A transient
// token is created when Username does not name an existing user. ExpiresIn
// is in seconds; 0 requests an eternal token. Groups, when non-empty, is
// folded into a member-of-groups scope; for an existing user the
// memberships are implied without specification.
type AccessTokenRequest struct {
	Username    string   `json:"username"    yaml:"username"`
	ExpiresIn   int      `json:"expires_in"  yaml:"expires_in"`
	Refreshable bool     `json:"refreshable" yaml:"refreshable"`
	Groups      []string `json:"groups"      yaml:"groups"`
}

// Validate checks the request before any HTTP call.
func (r *AccessTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.ExpiresIn, validation.Min(0)),
	)
}

// RevokeTokenRequest identifies a token to revoke by exactly one of Token
// or TokenID.
type RevokeTokenRequest struct {
	Token   string `json:"token,omitempty"    yaml:"token,omitempty"`
	TokenID string `json:"token_id,omitempty" yaml:"token_id,omitempty"`
}

// Validate checks that at least one identifier was supplied.
func (r *RevokeTokenRequest) Validate() error {
	if r.Token == "" && r.TokenID == "" {
		return ErrTokenOrTokenIDRequired
	}

	return nil
}
