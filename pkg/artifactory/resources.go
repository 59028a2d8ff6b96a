package artifactory

import (
	"context"
)

// UsersClient manages Artifactory users.
type UsersClient interface {
	// Get reads a user by name. Returns NotFoundError when the name does
	// not resolve.
	Get(ctx context.Context, name string) (*UserResponse, error)
	// List returns summary records for all users.
	List(ctx context.Context) ([]SimpleUser, error)
	// Create creates a user and returns the server-side representation.
	// Fails with AlreadyExistsError when the name already resolves.
	Create(ctx context.Context, user *NewUser) (*UserResponse, error)
	// Update updates an existing user and returns the server-side
	// representation. Propagates NotFoundError when the user is absent.
	Update(ctx context.Context, user *User) (*UserResponse, error)
	// Delete removes a user. Propagates NotFoundError when absent.
	Delete(ctx context.Context, name string) error
	// Unlock unlocks a locked-out user. Succeeds even when the user does
	// not exist.
	Unlock(ctx context.Context, name string) error
}

// GroupsClient manages Artifactory groups.
type GroupsClient interface {
	Get(ctx context.Context, name string) (*Group, error)
	List(ctx context.Context) ([]SimpleGroup, error)
	Create(ctx context.Context, group *Group) (*Group, error)
	Update(ctx context.Context, group *Group) (*Group, error)
	Delete(ctx context.Context, name string) error
}

// PermissionsClient manages permission targets.
type PermissionsClient interface {
	Get(ctx context.Context, name string) (*Permission, error)
	List(ctx context.Context) ([]SimplePermission, error)
	Create(ctx context.Context, permission *Permission) (*Permission, error)
	Update(ctx context.Context, permission *Permission) (*Permission, error)
	Delete(ctx context.Context, name string) error
}

// RepositoriesClient manages local, remote, and virtual repositories.
type RepositoriesClient interface {
	// Get reads a repository by key. The response is a tagged union
	// discriminated on the rclass field.
	Get(ctx context.Context, key string) (*RepositoryResponse, error)
	List(ctx context.Context) ([]SimpleRepository, error)
	Create(ctx context.Context, repo Repository) (*RepositoryResponse, error)
	Update(ctx context.Context, repo Repository) (*RepositoryResponse, error)
	Delete(ctx context.Context, key string) error
}

// ArtifactsClient manages artifacts addressed by hierarchical path. A
// single leading slash is stripped from every path argument before use.
type ArtifactsClient interface {
	// Info retrieves file or folder information for a path.
	Info(ctx context.Context, path string) (*ItemInfo, error)
	// Deploy streams the local file at localPath to the artifact path and
	// returns the info of the deployed artifact.
	Deploy(ctx context.Context, localPath string, path string) (*ItemInfo, error)
	// Download streams the artifact to localDir (created if needed,
	// current directory when empty) and returns the local file path. On
	// failure a partially written file may remain.
	Download(ctx context.Context, path string, localDir string) (string, error)
	// Properties retrieves item properties, optionally filtered.
	Properties(ctx context.Context, path string, properties []string) (*ArtifactProperties, error)
	// Stats retrieves download statistics for a file.
	Stats(ctx context.Context, path string) (*ArtifactStats, error)
	// Copy copies an artifact and returns the info at the destination.
	// With dryRun the remote system only reports the effect.
	Copy(ctx context.Context, source string, target string, dryRun bool) (*ItemInfo, error)
	// Move moves an artifact and returns the info at the destination.
	Move(ctx context.Context, source string, target string, dryRun bool) (*ItemInfo, error)
	// Delete removes the artifact or folder at path.
	Delete(ctx context.Context, path string) error
}

// SecurityClient exposes token and API key actions.
type SecurityClient interface {
	// GetEncryptedPassword returns the encrypted password of the
	// authenticated requestor.
	GetEncryptedPassword(ctx context.Context) (*EncryptedPassword, error)
	// CreateAccessToken creates an access token. The request is validated
	// before any HTTP call is made.
	CreateAccessToken(ctx context.Context, request *AccessTokenRequest) (*AccessToken, error)
	// RevokeAccessToken revokes a token identified by exactly one of
	// token or token id. The returned flag reports success; revoking an
	// absent token is not an error.
	RevokeAccessToken(ctx context.Context, request *RevokeTokenRequest) (bool, error)
	// CreateAPIKey creates an API key for the current user. The endpoint
	// errors when a key already exists; use RegenerateAPIKey instead.
	CreateAPIKey(ctx context.Context) (*APIKey, error)
	// RegenerateAPIKey regenerates the current user's API key.
	RegenerateAPIKey(ctx context.Context) (*APIKey, error)
	// GetAPIKey returns the current user's API key.
	GetAPIKey(ctx context.Context) (*APIKey, error)
	// RevokeAPIKey revokes the current user's API key.
	RevokeAPIKey(ctx context.Context) error
	// RevokeUserAPIKey revokes the API key of another user.
	RevokeUserAPIKey(ctx context.Context, name string) error
}

// AqlClient executes structured queries against the search endpoint.
type AqlClient interface {
	// Query compiles and executes an AQL query, returning the results
	// array. Engine rejections are reported as QueryError.
	Query(ctx context.Context, query *Aql) ([]AqlResult, error)
}
