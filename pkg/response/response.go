package response

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// Tool writes a tool-call body. Tool endpoints always answer 200 and carry
// failures in the body.
func Tool(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

func Health(w http.ResponseWriter) {
	JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
