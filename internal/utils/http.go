package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxJSONBodySize caps request bodies read by [ReadJSON].
const MaxJSONBodySize = 4 << 20

var (
	ErrEmptyBody    = errors.New("request body is empty")
	ErrTrailingJSON = errors.New("request body must hold a single JSON value")
)

// WriteJSON serializes data and writes it with statusCode and an
// application/json content type. A marshaling failure is answered with 500
// and returned.
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

// ReadJSON decodes exactly one JSON value from the request body into dst.
// At most MaxJSONBodySize bytes are read.
func ReadJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxJSONBodySize))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("decode JSON body: %w", err)
	}
	if dec.More() {
		return ErrTrailingJSON
	}

	return nil
}
