package config

import (
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame decodes game.yaml on top of the defaults.
func (l *Loader) LoadGame() (*GameConfig, error) {
	cfg := Default()
	data, err := fs.ReadFile(l.fsys, "game.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.yaml: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.yaml: %w", err)
	}
	return cfg, nil
}

// LoadScript loads scripts/<name>.yaml
func (l *Loader) LoadScript(name string) ([]string, error) {
	p := path.Join("scripts", name+".yaml")
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", name, err)
	}

	var sf ScriptFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse script %s: %w", name, err)
	}
	return sf.Lines, nil
}

// LoadAll loads game.yaml, resolves the cutscene scripts it names and
// validates the result.
func (l *Loader) LoadAll() (*GameConfig, error) {
	cfg, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	if name := cfg.Cutscene.OpeningScript; name != "" {
		if cfg.Cutscene.Opening, err = l.LoadScript(name); err != nil {
			return nil, err
		}
	}
	if name := cfg.Cutscene.DialogueScript; name != "" {
		if cfg.Cutscene.Dialogue, err = l.LoadScript(name); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", l.basePath, err)
	}
	return cfg, nil
}
