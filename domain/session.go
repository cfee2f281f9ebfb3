package domain

// Session is the authenticated connection handed over by the host after its
// own login flow: the org instance URL and an OAuth2 access token.
type Session struct {
	InstanceURL string `json:"instance_url"`
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id,omitempty"`
}

// UIState is what the screen renders. It is replaced as a whole on every
// transition, never patched.
type UIState struct {
	Data    []string
	Loading bool
	Error   string
}
