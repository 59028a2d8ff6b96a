package artifactory

import (
	"encoding/json"
	"errors"
	"fmt"
)

var errUnknownRepositoryClass = errors.New("unknown repository class")

// RepositoryClass discriminates the repository variants. The API carries
// it in the rclass field of every repository configuration.
type RepositoryClass string

// Repository classes.
const (
	RepositoryClassLocal   RepositoryClass = "local"
	RepositoryClassRemote  RepositoryClass = "remote"
	RepositoryClassVirtual RepositoryClass = "virtual"
)

// Repository is implemented by the repository configuration variants.
type Repository interface {
	// RepositoryKey returns the unique repository key.
	RepositoryKey() string
}

// LocalRepository represents a local repository configuration.
type LocalRepository struct {
	Key                    string          `json:"key"                              yaml:"key"`
	Rclass                 RepositoryClass `json:"rclass"                           yaml:"rclass"`
	PackageType            string          `json:"packageType,omitempty"            yaml:"packageType,omitempty"`
	Description            string          `json:"description,omitempty"            yaml:"description,omitempty"`
	Notes                  string          `json:"notes,omitempty"                  yaml:"notes,omitempty"`
	IncludesPattern        string          `json:"includesPattern,omitempty"        yaml:"includesPattern,omitempty"`
	ExcludesPattern        string          `json:"excludesPattern,omitempty"        yaml:"excludesPattern,omitempty"`
	RepoLayoutRef          string          `json:"repoLayoutRef,omitempty"          yaml:"repoLayoutRef,omitempty"`
	ArchiveBrowsingEnabled bool            `json:"archiveBrowsingEnabled,omitempty" yaml:"archiveBrowsingEnabled,omitempty"`
	XrayIndex              bool            `json:"xrayIndex,omitempty"              yaml:"xrayIndex,omitempty"`
}

// RepositoryKey implements Repository.
func (r *LocalRepository) RepositoryKey() string { return r.Key }

// RemoteRepository represents a remote (proxying) repository configuration.
type RemoteRepository struct {
	Key                   string          `json:"key"                             yaml:"key"`
	Rclass                RepositoryClass `json:"rclass"                          yaml:"rclass"`
	URL                   string          `json:"url"                             yaml:"url"`
	PackageType           string          `json:"packageType,omitempty"           yaml:"packageType,omitempty"`
	Description           string          `json:"description,omitempty"           yaml:"description,omitempty"`
	Notes                 string          `json:"notes,omitempty"                 yaml:"notes,omitempty"`
	IncludesPattern       string          `json:"includesPattern,omitempty"       yaml:"includesPattern,omitempty"`
	ExcludesPattern       string          `json:"excludesPattern,omitempty"       yaml:"excludesPattern,omitempty"`
	RemoteUsername        string          `json:"username,omitempty"              yaml:"username,omitempty"`
	RemotePassword        string          `json:"password,omitempty"              yaml:"password,omitempty"`
	Offline               bool            `json:"offline,omitempty"               yaml:"offline,omitempty"`
	HardFail              bool            `json:"hardFail,omitempty"              yaml:"hardFail,omitempty"`
	StoreArtifactsLocally bool            `json:"storeArtifactsLocally,omitempty" yaml:"storeArtifactsLocally,omitempty"`
}

// RepositoryKey implements Repository.
func (r *RemoteRepository) RepositoryKey() string { return r.Key }

// VirtualRepository represents a virtual (aggregating) repository
// configuration.
type VirtualRepository struct {
	Key                   string          `json:"key"                             yaml:"key"`
	Rclass                RepositoryClass `json:"rclass"                          yaml:"rclass"`
	Repositories          []string        `json:"repositories,omitempty"          yaml:"repositories,omitempty"`
	PackageType           string          `json:"packageType,omitempty"           yaml:"packageType,omitempty"`
	Description           string          `json:"description,omitempty"           yaml:"description,omitempty"`
	Notes                 string          `json:"notes,omitempty"                 yaml:"notes,omitempty"`
	IncludesPattern       string          `json:"includesPattern,omitempty"       yaml:"includesPattern,omitempty"`
	ExcludesPattern       string          `json:"excludesPattern,omitempty"       yaml:"excludesPattern,omitempty"`
	DefaultDeploymentRepo string          `json:"defaultDeploymentRepo,omitempty" yaml:"defaultDeploymentRepo,omitempty"`
}

// RepositoryKey implements Repository.
func (r *VirtualRepository) RepositoryKey() string { return r.Key }

// RepositoryResponse is the tagged union the repository read endpoint
// resolves to. Exactly one of Local, Remote, or Virtual is set, selected
// by the rclass discriminant in the response body.
type RepositoryResponse struct {
	Rclass  RepositoryClass
	Local   *LocalRepository
	Remote  *RemoteRepository
	Virtual *VirtualRepository
}

// Key returns the repository key of whichever variant is set.
func (r *RepositoryResponse) Key() string {
	switch r.Rclass {
	case RepositoryClassLocal:
		return r.Local.Key
	case RepositoryClassRemote:
		return r.Remote.Key
	case RepositoryClassVirtual:
		return r.Virtual.Key
	}

	return ""
}

// UnmarshalJSON decodes the variant selected by the rclass field.
func (r *RepositoryResponse) UnmarshalJSON(data []byte) error {
	var probe struct {
		Rclass RepositoryClass `json:"rclass"`
	}

	err := json.Unmarshal(data, &probe)
	if err != nil {
		return fmt.Errorf("probing repository class: %w", err)
	}

	r.Rclass = probe.Rclass

	switch probe.Rclass {
	case RepositoryClassLocal:
		r.Local = &LocalRepository{}

		return json.Unmarshal(data, r.Local)
	case RepositoryClassRemote:
		r.Remote = &RemoteRepository{}

		return json.Unmarshal(data, r.Remote)
	case RepositoryClassVirtual:
		r.Virtual = &VirtualRepository{}

		return json.Unmarshal(data, r.Virtual)
	}

	return fmt.Errorf("%w: %q", errUnknownRepositoryClass, probe.Rclass)
}

// SimpleRepository is the summary record returned by the repository list
// endpoint.
type SimpleRepository struct {
	Key         string `json:"key"                   yaml:"key"`
	Type        string `json:"type,omitempty"        yaml:"type,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string `json:"url,omitempty"         yaml:"url,omitempty"`
	PackageType string `json:"packageType,omitempty" yaml:"packageType,omitempty"`
}
