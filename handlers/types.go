package handlers

// HealthResponse defines model for HealthResponse.
type HealthResponse struct {
	Status string `json:"status"`
}

// StateResponse defines model for StateResponse.
type StateResponse struct {
	Data    []string `json:"data"`
	Loading bool     `json:"loading"`
	Error   *string  `json:"error,omitempty"`
}

// QueryRequest defines model for QueryRequest.
type QueryRequest struct {
	Soql string `json:"soql"`
}

// SessionRequest defines model for SessionRequest.
type SessionRequest struct {
	InstanceUrl string  `json:"instance_url"`
	AccessToken string  `json:"access_token"`
	UserId      *string `json:"user_id,omitempty"`
}

// SessionResponse defines model for SessionResponse.
type SessionResponse struct {
	InstanceUrl string  `json:"instance_url"`
	UserId      *string `json:"user_id,omitempty"`
}
