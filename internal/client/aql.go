package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/fivetwenty-io/artifactory/internal/http"
	"github.com/fivetwenty-io/artifactory/pkg/artifactory"
)

const aqlPath = "api/search/aql"

// AqlClient implements artifactory.AqlClient.
type AqlClient struct {
	httpClient *http.Client
	logger     hclog.Logger
}

// NewAqlClient creates a new AQL client.
func NewAqlClient(httpClient *http.Client, logger hclog.Logger) *AqlClient {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &AqlClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Query implements artifactory.AqlClient.Query.
func (c *AqlClient) Query(ctx context.Context, query *artifactory.Aql) ([]artifactory.AqlResult, error) {
	text, err := artifactory.BuildQuery(query)
	if err != nil {
		return nil, err
	}

	req := &http.Request{
		Method:      "POST",
		Path:        aqlPath,
		RawBody:     strings.NewReader(text),
		ContentType: "text/plain",
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, &artifactory.QueryError{Query: text, Cause: err}
	}

	var payload struct {
		Results []artifactory.AqlResult `json:"results"`
	}

	err = json.Unmarshal(resp.Body, &payload)
	if err != nil {
		return nil, fmt.Errorf("parsing query results: %w", err)
	}

	c.logger.Debug("query executed", "results", len(payload.Results))

	return payload.Results, nil
}
