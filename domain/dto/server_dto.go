package dto

// HealthResponse is served by /health and /api/health
type HealthResponse struct {
	Status      string  `json:"status"`
	Timestamp   string  `json:"timestamp"`
	Uptime      float64 `json:"uptime"`
	Environment string  `json:"environment"`
}

// DeploymentFiles reports which deployed artifacts exist on disk
type DeploymentFiles struct {
	YouTubePlayer bool `json:"YouTubePlayer"`
	Components    bool `json:"components"`
	Pages         bool `json:"pages"`
	Lib           bool `json:"lib"`
}

// DeploymentCheckResponse is served by /api/deployment-check
type DeploymentCheckResponse struct {
	Status           string          `json:"status"`
	DeploymentTime   string          `json:"deploymentTime"`
	GitCommit        string          `json:"gitCommit"`
	Files            DeploymentFiles `json:"files"`
	WorkingDirectory string          `json:"workingDirectory"`
	NodeEnv          string          `json:"nodeEnv"`
}

// DeploymentCheckError is returned when a probe fails
type DeploymentCheckError struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	WorkingDirectory string `json:"workingDirectory"`
}

// ErrorResponse is the top-level error body produced by the recovery middleware
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
