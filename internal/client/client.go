// Package client implements the artifactory resource client interfaces on
// top of the internal transport.
package client

import (
	"github.com/hashicorp/go-hclog"

	"github.com/fivetwenty-io/artifactory/internal/http"
	"github.com/fivetwenty-io/artifactory/pkg/artifactory"
)

// Client implements the artifactory.Client interface.
type Client struct {
	httpClient *http.Client
	logger     hclog.Logger

	// Resource clients
	users        artifactory.UsersClient
	groups       artifactory.GroupsClient
	permissions  artifactory.PermissionsClient
	repositories artifactory.RepositoriesClient
	artifacts    artifactory.ArtifactsClient
	security     artifactory.SecurityClient
	aql          artifactory.AqlClient
}

// New creates a client over an already configured transport.
func New(httpClient *http.Client, logger hclog.Logger) *Client {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	client := &Client{
		httpClient: httpClient,
		logger:     logger,
	}

	client.initializeResourceClients()

	return client
}

// Users implements artifactory.Client.Users.
func (c *Client) Users() artifactory.UsersClient {
	return c.users
}

// Groups implements artifactory.Client.Groups.
func (c *Client) Groups() artifactory.GroupsClient {
	return c.groups
}

// Permissions implements artifactory.Client.Permissions.
func (c *Client) Permissions() artifactory.PermissionsClient {
	return c.permissions
}

// Repositories implements artifactory.Client.Repositories.
func (c *Client) Repositories() artifactory.RepositoriesClient {
	return c.repositories
}

// Artifacts implements artifactory.Client.Artifacts.
func (c *Client) Artifacts() artifactory.ArtifactsClient {
	return c.artifacts
}

// Security implements artifactory.Client.Security.
func (c *Client) Security() artifactory.SecurityClient {
	return c.security
}

// Aql implements artifactory.Client.Aql.
func (c *Client) Aql() artifactory.AqlClient {
	return c.aql
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.users = NewUsersClient(c.httpClient, c.logger)
	c.groups = NewGroupsClient(c.httpClient, c.logger)
	c.permissions = NewPermissionsClient(c.httpClient, c.logger)
	c.repositories = NewRepositoriesClient(c.httpClient, c.logger)
	c.artifacts = NewArtifactsClient(c.httpClient, c.logger)
	c.security = NewSecurityClient(c.httpClient, c.logger)
	c.aql = NewAqlClient(c.httpClient, c.logger)
}

// notFoundStatus reports whether a read of a named security resource
// signaled absence. The API answers such reads with 404, and for some
// resources with 400.
func notFoundStatus(resp *http.Response) bool {
	if resp == nil {
		return false
	}

	return resp.StatusCode == 404 || resp.StatusCode == 400
}
