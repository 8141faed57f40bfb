package config

import (
	"encoding/json"
	"os"

	"github.com/avoronovs/partyplan/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config after parsing.
type JsonConfig struct {
	ServerURL    string `json:"server_url"`
	DatabasePath string `json:"database_path"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags via flagx.JsonConfigFlags; when no
// path is given, nothing is loaded. Empty JSON fields leave the current
// value in place. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
