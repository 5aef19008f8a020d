package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

type charsFile struct {
	Chars []Record `json:"chars"`
}

// FromFile reads catalog records from a chars.json file:
//
//	{"chars": [{"name": "Mario", "image": "img/mario.png"}, ...]}
func FromFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var f charsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return f.Chars, nil
}
