package handler

import (
	"net/http"
	"strings"
)

type testPostRequest struct {
	Name string `json:"name"`
}

// HandleTestPost handles POST /api/v1/test/test-post requests. It echoes the
// supplied name back to an authenticated caller.
func HandleTestPost(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	var req testPostRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Your Name is " + strings.TrimSpace(req.Name),
	})
}
