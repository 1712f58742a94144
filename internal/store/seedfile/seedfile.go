// Package seedfile reads the tasks a session starts with from a YAML or
// JSON file. The file is only read; nothing is ever written back.
package seedfile

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/tasklist/internal/model"
)

//go:embed schema.json
var schemaJSON string

// Load reads path and returns its tasks in file order.
func Load(path string) ([]model.Task, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(b)
}

// Parse decodes a YAML (or JSON) list of tasks. Tasks without an id get
// one after the largest id in the file; duplicate ids are rejected.
func Parse(b []byte) ([]model.Task, error) {
	var raw any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if raw == nil {
		return []model.Task{}, nil
	}
	if err := validate(raw); err != nil {
		return nil, err
	}

	var tasks []model.Task
	if err := yaml.Unmarshal(b, &tasks); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	seen := make(map[int]bool, len(tasks))
	for _, t := range tasks {
		if t.ID == 0 {
			continue
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("duplicate task id %d", t.ID)
		}
		seen[t.ID] = true
	}
	next := model.MaxID(tasks) + 1
	for i := range tasks {
		if tasks[i].ID == 0 {
			tasks[i].ID = next
			next++
		}
	}
	return tasks, nil
}

func validate(doc any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("validate seed schema: %w", err)
	}
	if result.Valid() {
		return nil
	}
	errs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		errs = append(errs, e.String())
	}
	sort.Strings(errs)
	return fmt.Errorf("seed schema validation failed: %s", strings.Join(errs, "; "))
}
