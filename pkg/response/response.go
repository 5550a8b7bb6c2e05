package response

import (
	"encoding/json"
	"net/http"
)

// APIResponse is the envelope every HTTP endpoint answers with.
type APIResponse struct {
	Success    bool            `json:"success"`
	Data       any             `json:"data,omitempty"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
	Error      *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PaginationInfo struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

func JSON(w http.ResponseWriter, status int, data any) {
	write(w, status, APIResponse{Success: true, Data: data})
}

func Paginated(w http.ResponseWriter, data any, pagination PaginationInfo) {
	write(w, http.StatusOK, APIResponse{Success: true, Data: data, Pagination: &pagination})
}

func Error(w http.ResponseWriter, status int, code, message string) {
	write(w, status, APIResponse{Success: false, Error: &ErrorInfo{Code: code, Message: message}})
}

func write(w http.ResponseWriter, status int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
