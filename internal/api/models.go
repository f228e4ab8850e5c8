package api

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// SolveBody is the POST body for a solve request.
type SolveBody struct {
	Input string `json:"input"`
}
