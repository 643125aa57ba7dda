package response

// ErrorResponse is the body returned for any failed request. Detail is
// only populated in development mode.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// SuccessResponse wraps successful payloads.
type SuccessResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
