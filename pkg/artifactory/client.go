package artifactory

import (
	"time"

	"github.com/hashicorp/go-hclog"
)

// SecurityResourceClients provides access to the named security resources.
type SecurityResourceClients interface {
	Users() UsersClient
	Groups() GroupsClient
	Permissions() PermissionsClient
}

// StorageClients provides access to repository and artifact operations.
type StorageClients interface {
	Repositories() RepositoriesClient
	Artifacts() ArtifactsClient
}

// SearchClients provides access to search and token/key actions.
type SearchClients interface {
	Security() SecurityClient
	Aql() AqlClient
}

// Client is the composed entry point for the Artifactory API.
type Client interface {
	SecurityResourceClients
	StorageClients
	SearchClients
}

// Config represents client configuration for building a Client.
//
// # Authentication
//
// Requests are authenticated with HTTP Basic auth using Username and
// Password. The pair is fixed for the lifetime of a client instance.
//
// # TLS
//
// VerifyTLS defaults to true. ClientCert/ClientKey, when both set, name a
// PEM certificate and key presented to the server during the handshake.
//
// # Timeouts and retries
//
// Per-request timeouts should generally be controlled via the context
// passed to client methods. Retry behavior for transient failures (>=500,
// 429, connection errors) can be tuned via RetryMax/RetryWaitMin/
// RetryWaitMax.
type Config struct {
	// BaseURL: base URL for the API (e.g.,
	// "https://artifactory.example.com/artifactory"). artifactoryclient.New
	// normalizes this value by trimming a trailing slash and adding
	// "https://" if no scheme is present.
	BaseURL string `yaml:"base_url"`

	// Username: principal for Basic auth.
	Username string `yaml:"username"`
	// Password: secret for Basic auth. An API key may be supplied here
	// instead of a password.
	Password string `yaml:"password"`

	// VerifyTLS: when false, server certificate verification is skipped.
	// Intended for test instances only; defaults to true via
	// DefaultConfig and LoadConfig.
	VerifyTLS bool `yaml:"verify_tls"`
	// ClientCert: path to a PEM client certificate.
	ClientCert string `yaml:"client_cert"`
	// ClientKey: path to the PEM key for ClientCert.
	ClientKey string `yaml:"client_key"`

	// HTTPTimeout: optional overall timeout applied by the transport.
	// Most calls should rely on context timeouts instead.
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	// RetryMax: maximum number of retries for transient failures. If 0, a
	// default is used by the transport.
	RetryMax int `yaml:"retry_max"`
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration `yaml:"retry_wait_min"`
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration `yaml:"retry_wait_max"`

	// Debug: enables verbose HTTP request/response logging on Logger.
	Debug bool `yaml:"debug"`
	// Logger: optional structured logger used by the transport and the
	// resource clients. Defaults to a no-op logger, so the library emits
	// nothing unless a sink is injected.
	Logger hclog.Logger `yaml:"-"`
	// UserAgent: overrides the default User-Agent header.
	UserAgent string `yaml:"user_agent"`
}

// DefaultConfig returns a Config with TLS verification enabled.
func DefaultConfig() *Config {
	return &Config{VerifyTLS: true}
}

// NewClient creates a new Artifactory API client.
// Deprecated: Use github.com/fivetwenty-io/artifactory/pkg/artifactoryclient.New instead.
func NewClient(config *Config) (Client, error) {
	return nil, ErrDeprecatedConstructor
}
