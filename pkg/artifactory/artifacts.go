package artifactory

import (
	"encoding/json"
	"fmt"
)

// Checksums carries the content checksums of a deployed file.
type Checksums struct {
	SHA1   string `json:"sha1,omitempty"   yaml:"sha1,omitempty"`
	MD5    string `json:"md5,omitempty"    yaml:"md5,omitempty"`
	SHA256 string `json:"sha256,omitempty" yaml:"sha256,omitempty"`
}

// FileInfo is the storage record for a file.
type FileInfo struct {
	Repo              string     `json:"repo"                        yaml:"repo"`
	Path              string     `json:"path"                        yaml:"path"`
	Created           string     `json:"created,omitempty"           yaml:"created,omitempty"`
	CreatedBy         string     `json:"createdBy,omitempty"         yaml:"createdBy,omitempty"`
	LastModified      string     `json:"lastModified,omitempty"      yaml:"lastModified,omitempty"`
	ModifiedBy        string     `json:"modifiedBy,omitempty"        yaml:"modifiedBy,omitempty"`
	LastUpdated       string     `json:"lastUpdated,omitempty"       yaml:"lastUpdated,omitempty"`
	DownloadURI       string     `json:"downloadUri,omitempty"       yaml:"downloadUri,omitempty"`
	MimeType          string     `json:"mimeType,omitempty"          yaml:"mimeType,omitempty"`
	Size              string     `json:"size,omitempty"              yaml:"size,omitempty"`
	Checksums         *Checksums `json:"checksums,omitempty"         yaml:"checksums,omitempty"`
	OriginalChecksums *Checksums `json:"originalChecksums,omitempty" yaml:"originalChecksums,omitempty"`
	URI               string     `json:"uri,omitempty"               yaml:"uri,omitempty"`
}

// FolderChild is one entry of a folder listing.
type FolderChild struct {
	URI    string `json:"uri"    yaml:"uri"`
	Folder bool   `json:"folder" yaml:"folder"`
}

// FolderInfo is the storage record for a folder.
type FolderInfo struct {
	Repo         string        `json:"repo"                   yaml:"repo"`
	Path         string        `json:"path"                   yaml:"path"`
	Created      string        `json:"created,omitempty"      yaml:"created,omitempty"`
	CreatedBy    string        `json:"createdBy,omitempty"    yaml:"createdBy,omitempty"`
	LastModified string        `json:"lastModified,omitempty" yaml:"lastModified,omitempty"`
	ModifiedBy   string        `json:"modifiedBy,omitempty"   yaml:"modifiedBy,omitempty"`
	LastUpdated  string        `json:"lastUpdated,omitempty"  yaml:"lastUpdated,omitempty"`
	Children     []FolderChild `json:"children"               yaml:"children"`
	URI          string        `json:"uri,omitempty"          yaml:"uri,omitempty"`
}

// ItemInfo is the tagged union the storage endpoint resolves to. The
// discriminant is the presence of the children field: folder records carry
// it, file records never do. Exactly one of File or Folder is set.
type ItemInfo struct {
	File   *FileInfo
	Folder *FolderInfo
}

// IsFolder reports whether the record describes a folder.
func (i *ItemInfo) IsFolder() bool {
	return i.Folder != nil
}

// Path returns the item path of whichever variant is set.
func (i *ItemInfo) Path() string {
	if i.Folder != nil {
		return i.Folder.Path
	}

	if i.File != nil {
		return i.File.Path
	}

	return ""
}

// Repo returns the repository key of whichever variant is set.
func (i *ItemInfo) Repo() string {
	if i.Folder != nil {
		return i.Folder.Repo
	}

	if i.File != nil {
		return i.File.Repo
	}

	return ""
}

// UnmarshalJSON decodes the variant selected by the presence of the
// children field.
func (i *ItemInfo) UnmarshalJSON(data []byte) error {
	var probe struct {
		Children json.RawMessage `json:"children"`
	}

	err := json.Unmarshal(data, &probe)
	if err != nil {
		return fmt.Errorf("probing item info: %w", err)
	}

	if probe.Children != nil {
		i.Folder = &FolderInfo{}

		return json.Unmarshal(data, i.Folder)
	}

	i.File = &FileInfo{}

	return json.Unmarshal(data, i.File)
}

// ArtifactProperties is the property map attached to an item.
type ArtifactProperties struct {
	URI        string              `json:"uri,omitempty" yaml:"uri,omitempty"`
	Properties map[string][]string `json:"properties"    yaml:"properties"`
}

// DownloadStats is one principal's download counters.
type DownloadStats struct {
	DownloadCount    int64  `json:"downloadCount"              yaml:"downloadCount"`
	LastDownloaded   int64  `json:"lastDownloaded"             yaml:"lastDownloaded"`
	LastDownloadedBy string `json:"lastDownloadedBy,omitempty" yaml:"lastDownloadedBy,omitempty"`
}

// ArtifactStats is the download-statistics record of a file.
type ArtifactStats struct {
	URI              string         `json:"uri,omitempty"                 yaml:"uri,omitempty"`
	DownloadCount    int64          `json:"downloadCount"                 yaml:"downloadCount"`
	LastDownloaded   int64          `json:"lastDownloaded"                yaml:"lastDownloaded"`
	LastDownloadedBy string         `json:"lastDownloadedBy,omitempty"    yaml:"lastDownloadedBy,omitempty"`
	RemoteStats      *DownloadStats `json:"remoteDownloadStats,omitempty" yaml:"remoteDownloadStats,omitempty"`
}
