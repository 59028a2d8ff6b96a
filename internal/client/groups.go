package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/hashicorp/go-hclog"

	"github.com/fivetwenty-io/artifactory/internal/http"
	"github.com/fivetwenty-io/artifactory/pkg/artifactory"
)

const groupsPath = "api/security/groups"

// GroupsClient implements artifactory.GroupsClient.
type GroupsClient struct {
	httpClient *http.Client
	logger     hclog.Logger
}

// NewGroupsClient creates a new groups client.
func NewGroupsClient(httpClient *http.Client, logger hclog.Logger) *GroupsClient {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &GroupsClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Get implements artifactory.GroupsClient.Get. The membership list is
// always requested along with the group.
func (c *GroupsClient) Get(ctx context.Context, name string) (*artifactory.Group, error) {
	query := url.Values{"includeUsers": []string{"true"}}

	resp, err := c.httpClient.Get(ctx, groupsPath+"/"+name, query)
	if err != nil {
		if notFoundStatus(resp) {
			return nil, &artifactory.NotFoundError{Kind: "group", ID: name}
		}

		return nil, fmt.Errorf("getting group: %w", err)
	}

	var group artifactory.Group

	err = json.Unmarshal(resp.Body, &group)
	if err != nil {
		return nil, fmt.Errorf("parsing group: %w", err)
	}

	c.logger.Debug("group found", "name", name)

	return &group, nil
}

// List implements artifactory.GroupsClient.List.
func (c *GroupsClient) List(ctx context.Context) ([]artifactory.SimpleGroup, error) {
	resp, err := c.httpClient.Get(ctx, groupsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}

	var groups []artifactory.SimpleGroup

	err = json.Unmarshal(resp.Body, &groups)
	if err != nil {
		return nil, fmt.Errorf("parsing group list: %w", err)
	}

	return groups, nil
}

// Create implements artifactory.GroupsClient.Create.
func (c *GroupsClient) Create(ctx context.Context, group *artifactory.Group) (*artifactory.Group, error) {
	_, err := c.Get(ctx, group.Name)
	if err == nil {
		return nil, &artifactory.AlreadyExistsError{Kind: "group", ID: group.Name}
	}

	if !artifactory.IsNotFound(err) {
		return nil, err
	}

	_, err = c.httpClient.Put(ctx, groupsPath+"/"+group.Name, group)
	if err != nil {
		return nil, fmt.Errorf("creating group: %w", err)
	}

	c.logger.Debug("group created", "name", group.Name)

	return c.Get(ctx, group.Name)
}

// Update implements artifactory.GroupsClient.Update.
func (c *GroupsClient) Update(ctx context.Context, group *artifactory.Group) (*artifactory.Group, error) {
	_, err := c.Get(ctx, group.Name)
	if err != nil {
		return nil, err
	}

	_, err = c.httpClient.Post(ctx, groupsPath+"/"+group.Name, group)
	if err != nil {
		return nil, fmt.Errorf("updating group: %w", err)
	}

	c.logger.Debug("group updated", "name", group.Name)

	return c.Get(ctx, group.Name)
}

// Delete implements artifactory.GroupsClient.Delete.
func (c *GroupsClient) Delete(ctx context.Context, name string) error {
	_, err := c.Get(ctx, name)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, groupsPath+"/"+name)
	if err != nil {
		return fmt.Errorf("deleting group: %w", err)
	}

	c.logger.Debug("group deleted", "name", name)

	return nil
}
