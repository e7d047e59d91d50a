package index

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// Load reads a specification document from path. The encoding is
// selected by extension: .yaml/.yml documents are parsed as YAML,
// everything else as JSON.
func Load(path string) (*SpecDocument, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read specification file", goerr.V("path", path))
	}

	var doc SpecDocument
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, goerr.Wrap(err, "failed to parse YAML specification", goerr.V("path", path))
		}
	default:
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, goerr.Wrap(err, "failed to parse JSON specification", goerr.V("path", path))
		}
	}

	return &doc, nil
}

// Encode renders the document for writing back as configuration, YAML
// or JSON by extension. JSON output is indented to stay diffable.
func (x *SpecDocument) Encode(path string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		raw, err := yaml.Marshal(x)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to encode specification as YAML")
		}
		return raw, nil

	default:
		raw, err := json.MarshalIndent(x, "", "  ")
		if err != nil {
			return nil, goerr.Wrap(err, "failed to encode specification as JSON")
		}
		return append(raw, '\n'), nil
	}
}
