package api

import (
	"net/url"

	"github.com/rohanthewiz/rweb"
)

// APIResponse provides a consistent JSON response structure for all API endpoints.
// Success responses include data, error responses include an error message.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// writeSuccess sends a successful JSON response with data.
// Uses rweb's built-in WriteJSON which sets content-type automatically.
func writeSuccess(ctx rweb.Context, status int, data interface{}) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: true, Data: data})
}

// writeError sends an error JSON response.
func writeError(ctx rweb.Context, status int, message string) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: false, Error: message})
}

// QueryValue returns the decoded value of a query parameter.
// The raw query is parsed with net/url so "+" and %-escapes decode as in a form.
func QueryValue(ctx rweb.Context, key string) string {
	values, err := url.ParseQuery(ctx.Request().Query())
	if err != nil {
		return ctx.Request().QueryParam(key)
	}
	return values.Get(key)
}
