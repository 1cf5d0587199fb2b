package icon

import (
	"encoding/json"
	"os"
)

// ManifestName is the manifest filename written into the output
// directory after all icons succeed.
const ManifestName = "manifest.json"

// Manifest summarizes one completed generation batch.
type Manifest struct {
	// Size is the pixel edge length of the generated images.
	Size int `json:"size"`

	// Count is the number of records processed.
	Count int `json:"count"`

	// Path is the output directory the batch was written to.
	Path string `json:"path"`
}

// WriteFile persists the manifest as indented JSON.
func (m Manifest) WriteFile(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
