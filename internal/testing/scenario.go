package testing

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/collections/internal/foundation/errors"
	"git.home.luguber.info/inful/collections/internal/foundation/normalization"
)

// Target is the set surface a scenario drives.
type Target interface {
	Put(key []byte)
	Has(key []byte) bool
	Delete(key []byte)
	Len() int
	Cap() int
	Layout() [][]byte
}

// Op is a scenario step operation.
type Op string

const (
	OpPut    Op = "put"
	OpHas    Op = "has"
	OpDelete Op = "delete"
)

var opNormalizer = normalization.NewNormalizer("scenario op", map[string]Op{
	"put":      OpPut,
	"add":      OpPut,
	"has":      OpHas,
	"contains": OpHas,
	"delete":   OpDelete,
	"remove":   OpDelete,
}, "")

// Step is one operation plus the state expected after it.
type Step struct {
	Op       string   `yaml:"op"`
	Key      string   `yaml:"key"`
	Expect   *bool    `yaml:"expect,omitempty"`
	Capacity *int     `yaml:"capacity,omitempty"`
	Load     *int     `yaml:"load,omitempty"`
	Layout   []string `yaml:"layout,omitempty"`

	op Op
}

// Scenario is a named operation script.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Capacity    int    `yaml:"capacity"`
	Steps       []Step `yaml:"steps"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load parses and validates the scenarios in a YAML file. Unknown fields are
// rejected so a typo cannot silently drop an assertion.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- test fixture path
	if err != nil {
		return nil, fmt.Errorf("read scenario file %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file scenarioFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse scenario file %s: %w", path, err)
	}

	for i := range file.Scenarios {
		if err := file.Scenarios[i].validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return file.Scenarios, nil
}

// LoadDir loads every *.yaml file in dir, in file name order.
func LoadDir(dir string) ([]Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var all []Scenario
	for _, p := range paths {
		scenarios, err := Load(p)
		if err != nil {
			return nil, err
		}
		all = append(all, scenarios...)
	}
	return all, nil
}

func (sc *Scenario) validate() error {
	if sc.Name == "" {
		return errors.ValidationError("scenario name is required").Build()
	}
	if sc.Capacity <= 0 {
		return errors.ValidationError("scenario capacity must be positive").
			WithContext("scenario", sc.Name).
			WithContext("capacity", sc.Capacity).
			Build()
	}
	for i := range sc.Steps {
		step := &sc.Steps[i]
		op, err := opNormalizer.NormalizeWithError(step.Op)
		if err != nil {
			return fmt.Errorf("scenario %q step %d: %w", sc.Name, i, err)
		}
		step.op = op
		if step.Key == "" {
			return errors.ValidationError("step key is required").
				WithContext("scenario", sc.Name).
				WithContext("step", i).
				Build()
		}
		if op == OpHas && step.Expect == nil {
			return errors.ValidationError("has step needs expect").
				WithContext("scenario", sc.Name).
				WithContext("step", i).
				Build()
		}
	}
	return nil
}

// Run replays the scenario as a subtest against a fresh target.
func (sc Scenario) Run(t *testing.T, newTarget func(capacity int) Target) {
	t.Run(sc.Name, func(t *testing.T) {
		if sc.Description != "" {
			t.Logf("=== %s ===", sc.Description)
		}

		target := newTarget(sc.Capacity)
		for i, step := range sc.Steps {
			key := []byte(step.Key)
			switch step.op {
			case OpPut:
				target.Put(key)
			case OpDelete:
				target.Delete(key)
			case OpHas:
				require.Equal(t, *step.Expect, target.Has(key), "step %d: has(%q)", i, step.Key)
			default:
				t.Fatalf("step %d: scenario was not loaded through Load", i)
			}

			if step.Capacity != nil {
				require.Equal(t, *step.Capacity, target.Cap(), "step %d: capacity", i)
			}
			if step.Load != nil {
				require.Equal(t, *step.Load, target.Len(), "step %d: load", i)
			}
			if step.Layout != nil {
				require.Equal(t, step.Layout, LayoutStrings(target.Layout()), "step %d: layout", i)
			}
		}
	})
}

// LayoutStrings renders a slot layout with empty slots as "".
func LayoutStrings(layout [][]byte) []string {
	out := make([]string, len(layout))
	for i, key := range layout {
		if key == nil {
			out[i] = emptySlot
			continue
		}
		out[i] = string(key)
	}
	return out
}
