package roomclass

import (
	"encoding/json"
	"fmt"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("roomclass: reading embedded %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("roomclass: parsing %s: %w", filename, err)
	}

	return result, nil
}

// LoadClasses loads the room class table from roomclasses.json.
func LoadClasses() ([]Class, error) {
	return Load[[]Class]("roomclasses.json")
}
