package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/fivetwenty-io/artifactory/internal/http"
	"github.com/fivetwenty-io/artifactory/pkg/artifactory"
)

const permissionsPath = "api/security/permissions"

// PermissionsClient implements artifactory.PermissionsClient.
type PermissionsClient struct {
	httpClient *http.Client
	logger     hclog.Logger
}

// NewPermissionsClient creates a new permissions client.
func NewPermissionsClient(httpClient *http.Client, logger hclog.Logger) *PermissionsClient {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &PermissionsClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Get implements artifactory.PermissionsClient.Get.
func (c *PermissionsClient) Get(ctx context.Context, name string) (*artifactory.Permission, error) {
	resp, err := c.httpClient.Get(ctx, permissionsPath+"/"+name, nil)
	if err != nil {
		if notFoundStatus(resp) {
			return nil, &artifactory.NotFoundError{Kind: "permission", ID: name}
		}

		return nil, fmt.Errorf("getting permission: %w", err)
	}

	var permission artifactory.Permission

	err = json.Unmarshal(resp.Body, &permission)
	if err != nil {
		return nil, fmt.Errorf("parsing permission: %w", err)
	}

	c.logger.Debug("permission found", "name", name)

	return &permission, nil
}

// List implements artifactory.PermissionsClient.List.
func (c *PermissionsClient) List(ctx context.Context) ([]artifactory.SimplePermission, error) {
	resp, err := c.httpClient.Get(ctx, permissionsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("listing permissions: %w", err)
	}

	var permissions []artifactory.SimplePermission

	err = json.Unmarshal(resp.Body, &permissions)
	if err != nil {
		return nil, fmt.Errorf("parsing permission list: %w", err)
	}

	return permissions, nil
}

// Create implements artifactory.PermissionsClient.Create.
func (c *PermissionsClient) Create(ctx context.Context, permission *artifactory.Permission) (*artifactory.Permission, error) {
	_, err := c.Get(ctx, permission.Name)
	if err == nil {
		return nil, &artifactory.AlreadyExistsError{Kind: "permission", ID: permission.Name}
	}

	if !artifactory.IsNotFound(err) {
		return nil, err
	}

	_, err = c.httpClient.Put(ctx, permissionsPath+"/"+permission.Name, permission)
	if err != nil {
		return nil, fmt.Errorf("creating permission: %w", err)
	}

	c.logger.Debug("permission created", "name", permission.Name)

	return c.Get(ctx, permission.Name)
}

// Update implements artifactory.PermissionsClient.Update. The existence
// check matches the other named resources: updating an absent permission
// propagates NotFoundError.
func (c *PermissionsClient) Update(ctx context.Context, permission *artifactory.Permission) (*artifactory.Permission, error) {
	_, err := c.Get(ctx, permission.Name)
	if err != nil {
		return nil, err
	}

	_, err = c.httpClient.Put(ctx, permissionsPath+"/"+permission.Name, permission)
	if err != nil {
		return nil, fmt.Errorf("updating permission: %w", err)
	}

	c.logger.Debug("permission updated", "name", permission.Name)

	return c.Get(ctx, permission.Name)
}

// Delete implements artifactory.PermissionsClient.Delete.
func (c *PermissionsClient) Delete(ctx context.Context, name string) error {
	_, err := c.Get(ctx, name)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, permissionsPath+"/"+name)
	if err != nil {
		return fmt.Errorf("deleting permission: %w", err)
	}

	c.logger.Debug("permission deleted", "name", name)

	return nil
}
