package artifactory

// Group represents an Artifactory group.
type Group struct {
	Name            string   `json:"name"                      yaml:"name"`
	Description     string   `json:"description,omitempty"     yaml:"description,omitempty"`
	AutoJoin        bool     `json:"autoJoin"                  yaml:"autoJoin"`
	AdminPrivileges bool     `json:"adminPrivileges"           yaml:"adminPrivileges"`
	Realm           string   `json:"realm,omitempty"           yaml:"realm,omitempty"`
	RealmAttributes string   `json:"realmAttributes,omitempty" yaml:"realmAttributes,omitempty"`
	UserNames       []string `json:"userNames,omitempty"       yaml:"userNames,omitempty"`
}

// SimpleGroup is the summary record returned by the group list endpoint.
type SimpleGroup struct {
	Name string `json:"name"          yaml:"name"`
	URI  string `json:"uri,omitempty" yaml:"uri,omitempty"`
}
