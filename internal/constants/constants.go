// Package constants centralizes transport and filesystem defaults shared
// by the internal packages.
package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Streaming and filesystem defaults.
const (
	// DownloadChunkSize is the buffer size used when streaming an
	// artifact to disk.
	DownloadChunkSize = 8192

	// DownloadDirPerm is the permission for created download directories.
	DownloadDirPerm = 0o750

	// DownloadFilePerm is the permission for downloaded files.
	DownloadFilePerm = 0o600
)
