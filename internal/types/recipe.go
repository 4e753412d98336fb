package types

// RecipeRequest is the body accepted by the generation endpoints
type RecipeRequest struct {
	Ingredients string `json:"ingredients"`
}

// RecipeResponse is a generated recipe as returned to the caller
type RecipeResponse struct {
	Title        string `json:"title"`
	Instructions string `json:"instructions"`
}

// ErrorResponse is the uniform error body
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse reports service status and the active model
type HealthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model"`
	Mode   string `json:"mode"`
}
