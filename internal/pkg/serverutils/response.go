package serverutils

// JSONResponse is the envelope every endpoint returns.
type JSONResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(message string, data interface{}) JSONResponse {
	return JSONResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(message string) JSONResponse {
	return JSONResponse{
		Success: false,
		Message: message,
	}
}
