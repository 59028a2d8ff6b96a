package artifactory

// PrincipalPermissions maps principal names to their granted permission
// flags (e.g. "r", "w", "d", "n", "m").
type PrincipalPermissions map[string][]string

// Principals groups user and group grants of a permission target.
type Principals struct {
	Users  PrincipalPermissions `json:"users,omitempty"  yaml:"users,omitempty"`
	Groups PrincipalPermissions `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// Permission represents a permission target.
type Permission struct {
	Name            string     `json:"name"                      yaml:"name"`
	IncludesPattern string     `json:"includesPattern,omitempty" yaml:"includesPattern,omitempty"`
	ExcludesPattern string     `json:"excludesPattern,omitempty" yaml:"excludesPattern,omitempty"`
	Repositories    []string   `json:"repositories"              yaml:"repositories"`
	Principals      Principals `json:"principals"                yaml:"principals"`
}

// SimplePermission is the summary record returned by the permission list
// endpoint.
type SimplePermission struct {
	Name string `json:"name"          yaml:"name"`
	URI  string `json:"uri,omitempty" yaml:"uri,omitempty"`
}
