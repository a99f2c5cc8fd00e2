package presets

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samdwyer/dungeongen/internal/world"
)

// ErrUnknownPreset is returned when a preset name is not registered.
var ErrUnknownPreset = errors.New("unknown preset")

// PresetDef is a named generator configuration loaded from YAML.
type PresetDef struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Config      world.Config `yaml:",inline"`
}

// PresetsFile represents the structure of presets.yaml.
type PresetsFile struct {
	Presets []PresetDef `yaml:"presets"`
}

// LoadPresets loads preset definitions from the embedded presets.yaml file.
func LoadPresets() ([]PresetDef, error) {
	file, err := Load[PresetsFile]("presets.yaml")
	if err != nil {
		return nil, err
	}
	return file.Presets, nil
}

// Registry holds loaded presets keyed by name.
type Registry struct {
	presets map[string]*PresetDef
	all     []PresetDef
}

// NewRegistry creates a registry from loaded preset definitions.
func NewRegistry(presets []PresetDef) *Registry {
	registry := &Registry{
		presets: make(map[string]*PresetDef),
		all:     presets,
	}
	for i := range presets {
		registry.presets[presets[i].Name] = &presets[i]
	}
	return registry
}

// LoadRegistry loads and validates every embedded preset.
func LoadRegistry() (*Registry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets loaded from presets.yaml")
	}
	for _, p := range presets {
		if err := p.Config.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	return NewRegistry(presets), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the configuration of the named preset.
func (r *Registry) Get(name string) (world.Config, error) {
	p := r.presets[name]
	if p == nil {
		return world.Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p.Config, nil
}

// Names returns all preset names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.all))
	for _, p := range r.all {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// All returns all preset definitions in file order.
func (r *Registry) All() []PresetDef {
	return r.all
}
