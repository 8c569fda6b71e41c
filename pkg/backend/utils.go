package backend

import "net/http"

// isSuccessResponse
func isSuccessResponse(r *http.Response) bool {
	return r.StatusCode == http.StatusOK
}
