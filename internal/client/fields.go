package client

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Serialization helpers applied at the request-construction boundary.
// The API takes booleans as "1"/"0", integers as decimal strings, and
// structured payloads as a JSON string in a single form field.

func formBool(value bool) string {
	if value {
		return "1"
	}

	return "0"
}

func formInt(value int) string {
	return strconv.Itoa(value)
}

func formJSON(payload interface{}) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding data field: %w", err)
	}

	return string(data), nil
}
