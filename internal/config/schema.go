package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/bnema/kursor/pkg/cursortheme"
)

// MetadataSchema generates the JSON schema of an SVG cursor icon's
// metadata.json document (an ordered array of frame records), pretty-printed.
func MetadataSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect([]cursortheme.Meta{})

	schema.ID = "https://github.com/bnema/kursor/metadata.schema.json"
	schema.Title = "SVG Cursor Metadata"
	schema.Description = "Per-frame metadata document found in a cursors_scalable icon directory"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
