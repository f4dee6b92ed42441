package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	EID      uint   `json:"e_id"`
	Username string `json:"username"`
	JobRole  string `json:"job_role,omitempty"`
	IsBoss   bool   `json:"is_boss"`
}
