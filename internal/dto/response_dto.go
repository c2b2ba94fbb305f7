package dto

import "net/http"

const messageSucceed = "Succeed"

// SuccessResponse is the envelope returned for an accepted submission.
type SuccessResponse struct {
	StatusCode int         `json:"statusCode" example:"200"`
	Method     string      `json:"method" example:"POST"`
	Message    string      `json:"message" example:"Succeed"`
	Data       SuccessData `json:"data"`
}

type SuccessData struct {
	Score float64 `json:"score" example:"0.3"`
	Rank  int     `json:"rank" example:"3"`
}

func NewSuccessResponse(data SuccessData) SuccessResponse {
	return SuccessResponse{
		StatusCode: http.StatusOK,
		Method:     http.MethodPost,
		Message:    messageSucceed,
		Data:       data,
	}
}

// ErrorResponse is the generic envelope for server side failures and unknown routes.
type ErrorResponse struct {
	StatusCode int            `json:"statusCode" example:"500"`
	Method     string         `json:"method" example:"POST"`
	Message    string         `json:"message" example:"Server Error"`
	Data       map[string]any `json:"data"`
}

func NewErrorResponse(status int, method, message string) ErrorResponse {
	return ErrorResponse{
		StatusCode: status,
		Method:     method,
		Message:    message,
		Data:       map[string]any{},
	}
}
