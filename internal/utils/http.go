package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes the
// provided status code before sending the body. If marshaling fails, it
// responds with 500 Internal Server Error and returns a wrapped error.
//
// Returns the number of bytes written and a non-nil error only when
// marshaling fails.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteMessage writes a small {"message": ...} JSON body with the given
// status code. Used for endpoints whose success payload is informational.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, map[string]string{"message": message}, statusCode) //nolint:errcheck
}
