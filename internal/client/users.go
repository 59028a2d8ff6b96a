package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/fivetwenty-io/artifactory/internal/http"
	"github.com/fivetwenty-io/artifactory/pkg/artifactory"
)

const (
	usersPath       = "api/security/users"
	unlockUsersPath = "api/security/unlockUsers"
)

// UsersClient implements artifactory.UsersClient.
type UsersClient struct {
	httpClient *http.Client
	logger     hclog.Logger
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client, logger hclog.Logger) *UsersClient {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &UsersClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Get implements artifactory.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, name string) (*artifactory.UserResponse, error) {
	resp, err := c.httpClient.Get(ctx, usersPath+"/"+name, nil)
	if err != nil {
		if notFoundStatus(resp) {
			return nil, &artifactory.NotFoundError{Kind: "user", ID: name}
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user artifactory.UserResponse

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	c.logger.Debug("user found", "name", name)

	return &user, nil
}

// List implements artifactory.UsersClient.List.
func (c *UsersClient) List(ctx context.Context) ([]artifactory.SimpleUser, error) {
	resp, err := c.httpClient.Get(ctx, usersPath, nil)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var users []artifactory.SimpleUser

	err = json.Unmarshal(resp.Body, &users)
	if err != nil {
		return nil, fmt.Errorf("parsing user list: %w", err)
	}

	return users, nil
}

// Create implements artifactory.UsersClient.Create. The existence check
// and the write are two requests; overlapping creates for the same name
// can both pass the check and are arbitrated remotely.
func (c *UsersClient) Create(ctx context.Context, user *artifactory.NewUser) (*artifactory.UserResponse, error) {
	_, err := c.Get(ctx, user.Name)
	if err == nil {
		return nil, &artifactory.AlreadyExistsError{Kind: "user", ID: user.Name}
	}

	if !artifactory.IsNotFound(err) {
		return nil, err
	}

	_, err = c.httpClient.Put(ctx, usersPath+"/"+user.Name, user)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	c.logger.Debug("user created", "name", user.Name)

	return c.Get(ctx, user.Name)
}

// Update implements artifactory.UsersClient.Update.
func (c *UsersClient) Update(ctx context.Context, user *artifactory.User) (*artifactory.UserResponse, error) {
	_, err := c.Get(ctx, user.Name)
	if err != nil {
		return nil, err
	}

	_, err = c.httpClient.Post(ctx, usersPath+"/"+user.Name, user)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	c.logger.Debug("user updated", "name", user.Name)

	return c.Get(ctx, user.Name)
}

// Delete implements artifactory.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, name string) error {
	_, err := c.Get(ctx, name)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, usersPath+"/"+name)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	c.logger.Debug("user deleted", "name", name)

	return nil
}

// Unlock implements artifactory.UsersClient.Unlock. The endpoint succeeds
// even when the user does not exist.
func (c *UsersClient) Unlock(ctx context.Context, name string) error {
	_, err := c.httpClient.Post(ctx, unlockUsersPath+"/"+name, nil)
	if err != nil {
		return fmt.Errorf("unlocking user: %w", err)
	}

	c.logger.Debug("user unlocked", "name", name)

	return nil
}
