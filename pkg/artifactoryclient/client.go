package artifactoryclient

import (
	"crypto/tls"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/artifactory/internal/client"
	"github.com/fivetwenty-io/artifactory/internal/constants"
	internalhttp "github.com/fivetwenty-io/artifactory/internal/http"
	"github.com/fivetwenty-io/artifactory/pkg/artifactory"
)

// New creates a new Artifactory API client.
func New(config *artifactory.Config) (artifactory.Client, error) {
	if config == nil {
		return nil, artifactory.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, artifactory.ErrBaseURLRequired
	}

	baseURL := normalizeBaseURL(config.BaseURL)

	tlsConfig, err := buildTLSConfig(config)
	if err != nil {
		return nil, err
	}

	opts := []internalhttp.Option{
		internalhttp.WithBasicAuth(config.Username, config.Password),
	}

	if tlsConfig != nil {
		opts = append(opts, internalhttp.WithTLSConfig(tlsConfig))
	}

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		waitMin := constants.DefaultRetryWaitMin
		waitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			waitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			waitMax = config.RetryWaitMax
		}

		opts = append(opts, internalhttp.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	httpClient := internalhttp.NewClient(baseURL, opts...)

	return client.New(httpClient, config.Logger), nil
}

// normalizeBaseURL trims a trailing slash and defaults the scheme to
// https.
func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

// buildTLSConfig translates the TLS fields of a Config. Returns nil when
// the default transport behavior suffices.
func buildTLSConfig(config *artifactory.Config) (*tls.Config, error) {
	if config.VerifyTLS && config.ClientCert == "" && config.ClientKey == "" {
		return nil, nil
	}

	if (config.ClientCert == "") != (config.ClientKey == "") {
		return nil, artifactory.ErrClientCertKeyIncomplete
	}

	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: !config.VerifyTLS, // #nosec G402 -- explicit opt-out for test instances
	}

	if config.ClientCert != "" {
		cert, err := tls.LoadX509KeyPair(config.ClientCert, config.ClientKey)
		if err != nil {
			return nil, fmt.Errorf("loading client certificate: %w", err)
		}

		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return tlsConfig, nil
}
