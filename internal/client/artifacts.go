package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/fivetwenty-io/artifactory/internal/constants"
	"github.com/fivetwenty-io/artifactory/internal/http"
	"github.com/fivetwenty-io/artifactory/pkg/artifactory"
)

const (
	storagePath = "api/storage"
	copyPath    = "api/copy"
	movePath    = "api/move"
)

// ArtifactsClient implements artifactory.ArtifactsClient.
type ArtifactsClient struct {
	httpClient *http.Client
	logger     hclog.Logger
}

// NewArtifactsClient creates a new artifacts client.
func NewArtifactsClient(httpClient *http.Client, logger hclog.Logger) *ArtifactsClient {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &ArtifactsClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// normalizeArtifactPath strips a single leading slash.
func normalizeArtifactPath(path string) string {
	return strings.TrimPrefix(path, "/")
}

// artifactNotFoundStatus reports whether a storage read signaled absence.
// The storage endpoints answer with 404 only.
func artifactNotFoundStatus(resp *http.Response) bool {
	return resp != nil && resp.StatusCode == 404
}

// Info implements artifactory.ArtifactsClient.Info.
func (c *ArtifactsClient) Info(ctx context.Context, path string) (*artifactory.ItemInfo, error) {
	path = normalizeArtifactPath(path)

	resp, err := c.httpClient.Get(ctx, storagePath+"/"+path, nil)
	if err != nil {
		if artifactNotFoundStatus(resp) {
			return nil, &artifactory.NotFoundError{Kind: "artifact", ID: path}
		}

		return nil, fmt.Errorf("getting artifact info: %w", err)
	}

	var info artifactory.ItemInfo

	err = json.Unmarshal(resp.Body, &info)
	if err != nil {
		return nil, fmt.Errorf("parsing artifact info: %w", err)
	}

	return &info, nil
}

// Deploy implements artifactory.ArtifactsClient.Deploy.
func (c *ArtifactsClient) Deploy(ctx context.Context, localPath string, path string) (*artifactory.ItemInfo, error) {
	path = normalizeArtifactPath(path)

	file, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("opening local file: %w", err)
	}
	defer func() { _ = file.Close() }()

	req := &http.Request{
		Method:      "PUT",
		Path:        path,
		RawBody:     file,
		ContentType: "application/octet-stream",
	}

	_, err = c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("deploying artifact: %w", err)
	}

	c.logger.Debug("artifact deployed", "path", path)

	return c.Info(ctx, path)
}

// Download implements artifactory.ArtifactsClient.Download. The transfer
// is chunked; a failure mid-stream leaves a partially written file behind
// for the caller to clean up.
func (c *ArtifactsClient) Download(ctx context.Context, path string, localDir string) (string, error) {
	path = normalizeArtifactPath(path)
	fileName := path[strings.LastIndex(path, "/")+1:]

	localPath := fileName
	if localDir != "" {
		err := os.MkdirAll(localDir, constants.DownloadDirPerm)
		if err != nil {
			return "", fmt.Errorf("creating download directory: %w", err)
		}

		localPath = filepath.Join(localDir, fileName)
	}

	stream, err := c.httpClient.DoStream(ctx, &http.Request{Method: "GET", Path: path})
	if err != nil {
		if stream != nil && stream.StatusCode == 404 {
			return "", &artifactory.NotFoundError{Kind: "artifact", ID: path}
		}

		return "", fmt.Errorf("downloading artifact: %w", err)
	}
	defer func() { _ = stream.Body.Close() }()

	file, err := os.OpenFile(localPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.DownloadFilePerm)
	if err != nil {
		return "", fmt.Errorf("creating local file: %w", err)
	}
	defer func() { _ = file.Close() }()

	err = copyChunks(file, stream.Body)
	if err != nil {
		return "", fmt.Errorf("writing artifact to %s: %w", localPath, err)
	}

	c.logger.Debug("artifact downloaded", "path", path, "local", localPath)

	return localPath, nil
}

// copyChunks streams src to dst in fixed-size chunks, skipping the
// zero-length keep-alive reads some frontends emit.
func copyChunks(dst io.Writer, src io.Reader) error {
	buf := make([]byte, constants.DownloadChunkSize)

	for {
		n, err := src.Read(buf)
		if n > 0 {
			_, writeErr := dst.Write(buf[:n])
			if writeErr != nil {
				return writeErr
			}
		}

		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}
	}
}

// Properties implements artifactory.ArtifactsClient.Properties.
func (c *ArtifactsClient) Properties(ctx context.Context, path string, properties []string) (*artifactory.ArtifactProperties, error) {
	path = normalizeArtifactPath(path)
	query := url.Values{"properties": []string{strings.Join(properties, ",")}}

	resp, err := c.httpClient.Get(ctx, storagePath+"/"+path, query)
	if err != nil {
		if artifactNotFoundStatus(resp) {
			return nil, &artifactory.NotFoundError{Kind: "properties of artifact", ID: path}
		}

		return nil, fmt.Errorf("getting artifact properties: %w", err)
	}

	var props artifactory.ArtifactProperties

	err = json.Unmarshal(resp.Body, &props)
	if err != nil {
		return nil, fmt.Errorf("parsing artifact properties: %w", err)
	}

	return &props, nil
}

// Stats implements artifactory.ArtifactsClient.Stats.
func (c *ArtifactsClient) Stats(ctx context.Context, path string) (*artifactory.ArtifactStats, error) {
	path = normalizeArtifactPath(path)
	query := url.Values{"stats": []string{""}}

	resp, err := c.httpClient.Get(ctx, storagePath+"/"+path, query)
	if err != nil {
		if artifactNotFoundStatus(resp) {
			return nil, &artifactory.NotFoundError{Kind: "artifact", ID: path}
		}

		return nil, fmt.Errorf("getting artifact stats: %w", err)
	}

	var stats artifactory.ArtifactStats

	err = json.Unmarshal(resp.Body, &stats)
	if err != nil {
		return nil, fmt.Errorf("parsing artifact stats: %w", err)
	}

	return &stats, nil
}

// Copy implements artifactory.ArtifactsClient.Copy.
func (c *ArtifactsClient) Copy(ctx context.Context, source string, target string, dryRun bool) (*artifactory.ItemInfo, error) {
	return c.transfer(ctx, copyPath, "copying", source, target, dryRun)
}

// Move implements artifactory.ArtifactsClient.Move.
func (c *ArtifactsClient) Move(ctx context.Context, source string, target string, dryRun bool) (*artifactory.ItemInfo, error) {
	return c.transfer(ctx, movePath, "moving", source, target, dryRun)
}

func (c *ArtifactsClient) transfer(ctx context.Context, basePath, verb, source, target string, dryRun bool) (*artifactory.ItemInfo, error) {
	source = normalizeArtifactPath(source)
	target = normalizeArtifactPath(target)

	dry := 0
	if dryRun {
		dry = 1
	}

	query := url.Values{
		"to":  []string{target},
		"dry": []string{strconv.Itoa(dry)},
	}

	req := &http.Request{
		Method: "POST",
		Path:   basePath + "/" + source,
		Query:  query,
	}

	_, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s artifact: %w", verb, err)
	}

	c.logger.Debug("artifact transferred", "source", source, "target", target, "dry", dry)

	return c.Info(ctx, target)
}

// Delete implements artifactory.ArtifactsClient.Delete.
func (c *ArtifactsClient) Delete(ctx context.Context, path string) error {
	path = normalizeArtifactPath(path)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting artifact: %w", err)
	}

	c.logger.Debug("artifact deleted", "path", path)

	return nil
}
