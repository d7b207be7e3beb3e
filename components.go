package dsn

// Components is the discrete-field input to FromComponents.
//
// Protocol, User, Host, and ProjectID are mandatory. The remaining fields
// default to the empty string when left unset.
type Components struct {
	// Protocol is the transport scheme, "http" or "https".
	Protocol string

	// User is the public authorization key.
	User string

	// Password is the private authorization key. Optional.
	Password string

	// Host is the endpoint hostname.
	Host string

	// Port defaults to "" (use the protocol default).
	Port string

	// Path is the prefix path before the project ID, without leading or
	// trailing slash. Optional.
	Path string

	// ProjectID is the final path segment identifying the project.
	ProjectID string
}
