// Package contractfile loads valido.Contracts from YAML or JSON files, so that contracts can be
// kept alongside data rather than in code. A contract file has a columns key, holding either a list
// of names or a mapping of name to dtype, and an optional strict key. The order of a mapping is
// preserved.
package contractfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-sif/valido"
	"github.com/go-sif/valido/errors"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Format identifies a contract file format
type Format = string

const (
	// YAMLFormat is the YAML contract format
	YAMLFormat Format = "yaml"
	// JSONFormat is the JSON contract format
	JSONFormat Format = "json"
)

// Load reads a contract file, choosing the format from its extension
func Load(path string) (valido.Contract, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = YAMLFormat
	case ".json":
		format = JSONFormat
	default:
		return valido.Contract{}, errors.UnsupportedFormatError{Path: path}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return valido.Contract{}, err
	}
	contract, err := Parse(data, format)
	if err != nil {
		return valido.Contract{}, fmt.Errorf("%s: %w", path, err)
	}
	return contract, nil
}

// Parse decodes a contract in the given format
func Parse(data []byte, format Format) (valido.Contract, error) {
	switch format {
	case YAMLFormat:
		return parseYAML(data)
	case JSONFormat:
		return parseJSON(data)
	default:
		return valido.Contract{}, fmt.Errorf("Unknown contract format %s", format)
	}
}

type yamlContract struct {
	Columns yaml.Node `yaml:"columns"`
	Strict  bool      `yaml:"strict"`
}

func parseYAML(data []byte) (valido.Contract, error) {
	var doc yamlContract
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return valido.Contract{}, errors.InvalidContractError{Reason: err.Error()}
	}
	contract := valido.Contract{Strict: doc.Strict}
	node := doc.Columns
	switch node.Kind {
	case 0:
		// no columns
	case yaml.ScalarNode:
		if node.Tag != "!!null" {
			return valido.Contract{}, errors.InvalidContractError{Reason: fmt.Sprintf("line %d: columns must be a list or a mapping", node.Line)}
		}
	case yaml.SequenceNode:
		names := make(valido.Names, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return valido.Contract{}, errors.InvalidContractError{Reason: fmt.Sprintf("line %d: column names must be strings", item.Line)}
			}
			names = append(names, item.Value)
		}
		contract.Columns = names
	case yaml.MappingNode:
		dtypes := make(valido.Dtypes, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
				return valido.Contract{}, errors.InvalidContractError{Reason: fmt.Sprintf("line %d: dtypes must be strings", key.Line)}
			}
			dtypes = append(dtypes, valido.ColumnDtype{Name: key.Value, Dtype: value.Value})
		}
		contract.Columns = dtypes
	default:
		return valido.Contract{}, errors.InvalidContractError{Reason: fmt.Sprintf("line %d: columns must be a list or a mapping", node.Line)}
	}
	return contract, nil
}

func parseJSON(data []byte) (valido.Contract, error) {
	if !gjson.ValidBytes(data) {
		return valido.Contract{}, errors.InvalidContractError{Reason: "malformed JSON"}
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return valido.Contract{}, errors.InvalidContractError{Reason: "contract must be an object"}
	}
	contract := valido.Contract{}
	strict := doc.Get("strict")
	if strict.Exists() {
		if strict.Type != gjson.True && strict.Type != gjson.False {
			return valido.Contract{}, errors.InvalidContractError{Reason: "strict must be a boolean"}
		}
		contract.Strict = strict.Bool()
	}
	columns := doc.Get("columns")
	var invalid error
	switch {
	case !columns.Exists() || columns.Type == gjson.Null:
		// no columns
	case columns.IsArray():
		names := make(valido.Names, 0)
		columns.ForEach(func(_, value gjson.Result) bool {
			if value.Type != gjson.String {
				invalid = errors.InvalidContractError{Reason: "column names must be strings"}
				return false
			}
			names = append(names, value.String())
			return true
		})
		contract.Columns = names
	case columns.IsObject():
		dtypes := make(valido.Dtypes, 0)
		columns.ForEach(func(key, value gjson.Result) bool {
			if value.Type != gjson.String {
				invalid = errors.InvalidContractError{Reason: "dtypes must be strings"}
				return false
			}
			dtypes = append(dtypes, valido.ColumnDtype{Name: key.String(), Dtype: value.String()})
			return true
		})
		contract.Columns = dtypes
	default:
		return valido.Contract{}, errors.InvalidContractError{Reason: "columns must be a list or an object"}
	}
	if invalid != nil {
		return valido.Contract{}, invalid
	}
	return contract, nil
}
