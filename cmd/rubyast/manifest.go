package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Neswisoft/ruby/internal/driver"
)

const manifestName = "rubyast.toml"

const noManifestMessage = "no rubyast.toml found\nplease pass a directory explicitly, e.g.:\n  rubyast batch path/to/corpus"

type manifest struct {
	Path   string
	Root   string
	Config manifestConfig
}

type manifestConfig struct {
	Project projectSection `toml:"project"`
	Decode  decodeSection  `toml:"decode"`
}

type projectSection struct {
	Name string `toml:"name"`
}

type decodeSection struct {
	Roots     []string `toml:"roots"`
	Extension string   `toml:"extension"`
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadManifest(startDir string) (*manifest, bool, error) {
	path, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadManifestConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

func loadManifestConfig(path string) (manifestConfig, error) {
	var cfg manifestConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return manifestConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("project") {
		return manifestConfig{}, fmt.Errorf("%s: missing [project]", path)
	}
	if !meta.IsDefined("project", "name") || strings.TrimSpace(cfg.Project.Name) == "" {
		return manifestConfig{}, fmt.Errorf("%s: missing [project].name", path)
	}
	if !meta.IsDefined("decode") {
		return manifestConfig{}, fmt.Errorf("%s: missing [decode]", path)
	}
	if !meta.IsDefined("decode", "roots") || len(cfg.Decode.Roots) == 0 {
		return manifestConfig{}, fmt.Errorf("%s: missing [decode].roots", path)
	}
	if meta.IsDefined("decode", "extension") {
		ext := strings.TrimSpace(cfg.Decode.Extension)
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			return manifestConfig{}, fmt.Errorf("%s: [decode].extension must start with a dot", path)
		}
	}
	return cfg, nil
}

// extension возвращает суффикс спутника из манифеста или стандартный.
func (m *manifest) extension() string {
	ext := strings.TrimSpace(m.Config.Decode.Extension)
	if ext == "" {
		return driver.SerializedExt
	}
	return ext
}

// rootDirs возвращает каталоги [decode].roots относительно манифеста.
func (m *manifest) rootDirs() []string {
	dirs := make([]string, len(m.Config.Decode.Roots))
	for i, root := range m.Config.Decode.Roots {
		dirs[i] = filepath.Join(m.Root, filepath.FromSlash(root))
	}
	return dirs
}

// resolveBatchRoots выбирает каталоги прогона: явный аргумент или
// [decode].roots манифеста. Суффикс спутника в обоих случаях берётся из
// манифеста, если тот найден вверх по дереву.
func resolveBatchRoots(args []string) ([]string, string, error) {
	startDir := "."
	if len(args) > 0 && args[0] != "" {
		startDir = args[0]
		info, err := os.Stat(startDir)
		if err != nil {
			return nil, "", fmt.Errorf("failed to stat path: %w", err)
		}
		if !info.IsDir() {
			return nil, "", fmt.Errorf("%s is not a directory", startDir)
		}
	}

	m, ok, err := loadManifest(startDir)
	if err != nil {
		return nil, "", err
	}
	ext := driver.SerializedExt
	if ok {
		ext = m.extension()
	}

	if len(args) > 0 && args[0] != "" {
		return []string{args[0]}, ext, nil
	}
	if !ok {
		return nil, "", errors.New(noManifestMessage)
	}
	return m.rootDirs(), ext, nil
}
