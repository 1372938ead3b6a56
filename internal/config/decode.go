package config

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

func decode(name string, data []byte, cfg *Config) error {
	if isYAML(name) {
		return yaml.Unmarshal(data, cfg)
	}
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	return dec.Decode(cfg)
}
