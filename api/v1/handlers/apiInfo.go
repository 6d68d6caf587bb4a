package handlers

import (
	"encoding/json"
	"net/http"
)

func ApiInfoHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	response := map[string]interface{}{
		"message": "Bloglist API v1",
		"endpoints": map[string]string{
			"users": "/api/users",
			"login": "/api/login",
			"blogs": "/api/blogs",
		},
	}
	json.NewEncoder(w).Encode(response)
}
