package decoder

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag read by Mapstructure. It matches the JSON tags
// so that one set of tags serves both decoders.
const TagName = "json"

// Mapstructure decodes data into target using github.com/mitchellh/mapstructure.
//
// Unlike JSON it does not round-trip through text, and it refuses implicit
// conversions between kinds: a string never decodes into an int field.
// Integer widths are still adapted (int64 decodes into int).
//
// This is the default decoder used by kasane.Store.Decode.
func Mapstructure(data any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: TagName,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := dec.Decode(data); err != nil {
		return fmt.Errorf("failed to decode to target type: %w", err)
	}
	return nil
}
