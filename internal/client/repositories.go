package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/fivetwenty-io/artifactory/internal/http"
	"github.com/fivetwenty-io/artifactory/pkg/artifactory"
)

const repositoriesPath = "api/repositories"

// RepositoriesClient implements artifactory.RepositoriesClient.
type RepositoriesClient struct {
	httpClient *http.Client
	logger     hclog.Logger
}

// NewRepositoriesClient creates a new repositories client.
func NewRepositoriesClient(httpClient *http.Client, logger hclog.Logger) *RepositoriesClient {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &RepositoriesClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Get implements artifactory.RepositoriesClient.Get.
func (c *RepositoriesClient) Get(ctx context.Context, key string) (*artifactory.RepositoryResponse, error) {
	resp, err := c.httpClient.Get(ctx, repositoriesPath+"/"+key, nil)
	if err != nil {
		if notFoundStatus(resp) {
			return nil, &artifactory.NotFoundError{Kind: "repository", ID: key}
		}

		return nil, fmt.Errorf("getting repository: %w", err)
	}

	var repo artifactory.RepositoryResponse

	err = json.Unmarshal(resp.Body, &repo)
	if err != nil {
		return nil, fmt.Errorf("parsing repository: %w", err)
	}

	c.logger.Debug("repository found", "key", key, "rclass", repo.Rclass)

	return &repo, nil
}

// List implements artifactory.RepositoriesClient.List.
func (c *RepositoriesClient) List(ctx context.Context) ([]artifactory.SimpleRepository, error) {
	resp, err := c.httpClient.Get(ctx, repositoriesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("listing repositories: %w", err)
	}

	var repos []artifactory.SimpleRepository

	err = json.Unmarshal(resp.Body, &repos)
	if err != nil {
		return nil, fmt.Errorf("parsing repository list: %w", err)
	}

	return repos, nil
}

// Create implements artifactory.RepositoriesClient.Create.
func (c *RepositoriesClient) Create(ctx context.Context, repo artifactory.Repository) (*artifactory.RepositoryResponse, error) {
	key := repo.RepositoryKey()

	_, err := c.Get(ctx, key)
	if err == nil {
		return nil, &artifactory.AlreadyExistsError{Kind: "repository", ID: key}
	}

	if !artifactory.IsNotFound(err) {
		return nil, err
	}

	_, err = c.httpClient.Put(ctx, repositoriesPath+"/"+key, repo)
	if err != nil {
		return nil, fmt.Errorf("creating repository: %w", err)
	}

	c.logger.Debug("repository created", "key", key)

	return c.Get(ctx, key)
}

// Update implements artifactory.RepositoriesClient.Update.
func (c *RepositoriesClient) Update(ctx context.Context, repo artifactory.Repository) (*artifactory.RepositoryResponse, error) {
	key := repo.RepositoryKey()

	_, err := c.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	_, err = c.httpClient.Post(ctx, repositoriesPath+"/"+key, repo)
	if err != nil {
		return nil, fmt.Errorf("updating repository: %w", err)
	}

	c.logger.Debug("repository updated", "key", key)

	return c.Get(ctx, key)
}

// Delete implements artifactory.RepositoriesClient.Delete.
func (c *RepositoriesClient) Delete(ctx context.Context, key string) error {
	_, err := c.Get(ctx, key)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, repositoriesPath+"/"+key)
	if err != nil {
		return fmt.Errorf("deleting repository: %w", err)
	}

	c.logger.Debug("repository deleted", "key", key)

	return nil
}
