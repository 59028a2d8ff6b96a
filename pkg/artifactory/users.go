package artifactory

// User represents the updatable fields of an Artifactory user.
type User struct {
	Name                     string   `json:"name"                               yaml:"name"`
	Email                    string   `json:"email,omitempty"                    yaml:"email,omitempty"`
	Password                 string   `json:"password,omitempty"                 yaml:"password,omitempty"`
	Admin                    bool     `json:"admin"                              yaml:"admin"`
	ProfileUpdatable         bool     `json:"profileUpdatable"                   yaml:"profileUpdatable"`
	DisableUIAccess          bool     `json:"disableUIAccess"                    yaml:"disableUIAccess"`
	InternalPasswordDisabled bool     `json:"internalPasswordDisabled"           yaml:"internalPasswordDisabled"`
	Groups                   []string `json:"groups,omitempty"                   yaml:"groups,omitempty"`
}

// NewUser represents a user to be created. Password is mandatory on
// creation.
type NewUser struct {
	Name                     string   `json:"name"                     yaml:"name"`
	Email                    string   `json:"email"                    yaml:"email"`
	Password                 string   `json:"password"                 yaml:"password"`
	Admin                    bool     `json:"admin"                    yaml:"admin"`
	ProfileUpdatable         bool     `json:"profileUpdatable"         yaml:"profileUpdatable"`
	DisableUIAccess          bool     `json:"disableUIAccess"          yaml:"disableUIAccess"`
	InternalPasswordDisabled bool     `json:"internalPasswordDisabled" yaml:"internalPasswordDisabled"`
	Groups                   []string `json:"groups,omitempty"         yaml:"groups,omitempty"`
}

// UserResponse is the canonical server-side representation of a user.
type UserResponse struct {
	Name                     string   `json:"name"                     yaml:"name"`
	Email                    string   `json:"email"                    yaml:"email"`
	Admin                    bool     `json:"admin"                    yaml:"admin"`
	ProfileUpdatable         bool     `json:"profileUpdatable"         yaml:"profileUpdatable"`
	DisableUIAccess          bool     `json:"disableUIAccess"          yaml:"disableUIAccess"`
	InternalPasswordDisabled bool     `json:"internalPasswordDisabled" yaml:"internalPasswordDisabled"`
	Groups                   []string `json:"groups,omitempty"         yaml:"groups,omitempty"`
	LastLoggedInMillis       int64    `json:"lastLoggedInMillis"       yaml:"lastLoggedInMillis"`
	Realm                    string   `json:"realm,omitempty"          yaml:"realm,omitempty"`
	OfflineMode              bool     `json:"offlineMode"              yaml:"offlineMode"`
}

// SimpleUser is the summary record returned by the user list endpoint.
type SimpleUser struct {
	Name  string `json:"name"            yaml:"name"`
	URI   string `json:"uri,omitempty"   yaml:"uri,omitempty"`
	Realm string `json:"realm,omitempty" yaml:"realm,omitempty"`
}
