package catalog

import (
	"bytes"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	cberrors "github.com/alexisbeaulieu97/cellbutton/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads, decodes and validates the catalog at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cberrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a catalog document. path is only used in
// error messages.
func Parse(path string, data []byte) (*Catalog, error) {
	var cat Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cat); err != nil {
		return nil, cberrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&cat); err != nil {
		return nil, err
	}

	return &cat, nil
}

// Marshal encodes the catalog as YAML.
func Marshal(cat *Catalog) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cat); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
