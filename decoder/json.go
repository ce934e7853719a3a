package decoder

import (
	"encoding/json"
	"fmt"
)

// JSON decodes data into target using JSON marshal/unmarshal.
// Struct fields are matched by their `json` tags.
func JSON(data any, target any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal map: %w", err)
	}

	if err := json.Unmarshal(b, target); err != nil {
		return fmt.Errorf("failed to unmarshal to target type: %w", err)
	}

	return nil
}
