// File: internal/dto/http_error.go
package dto

// HTTPError 是 JSON 端點（目前只有 /ping）的錯誤回應；HTML 頁面另由 view.ErrorPage 呈現
// swagger:model dto.HTTPError
type HTTPError struct {
	Message string `json:"message" example:"database unhealthy"`
}
