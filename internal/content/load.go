package content

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"path"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml schema/*.json
var files embed.FS

const schemaBaseURL = "https://hemepath.local/schema/"

// document pairs a data file with the schema it must satisfy.
type document struct {
	name string // base name shared by data/<name>.yaml and schema/<name>.json
	into any
}

// decode reads data/<name>.yaml, validates it against schema/<name>.json and
// unmarshals it into out.
func decode(fsys embed.FS, name string, out any) error {
	raw, err := fsys.ReadFile(path.Join("data", name+".yaml"))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}

	// The validator wants a JSON-shaped value, not yaml.v3's decoded types.
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("normalize %s: %w", name, err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonBytes))
	if err != nil {
		return fmt.Errorf("normalize %s: %w", name, err)
	}

	sch, err := compileSchema(fsys, name)
	if err != nil {
		return err
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("%s: schema validation failed: %w", name, err)
	}

	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func compileSchema(fsys embed.FS, name string) (*jsonschema.Schema, error) {
	raw, err := fsys.ReadFile(path.Join("schema", name+".json"))
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", name, err)
	}
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}

	url := schemaBaseURL + name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", name, err)
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return sch, nil
}
