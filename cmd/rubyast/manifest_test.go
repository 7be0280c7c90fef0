package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Neswisoft/ruby/internal/driver"
)

const sampleManifest = `# test manifest
[project]
name = "corpus"

[decode]
roots = ["spec/fixtures", "lib"]
`

func writeManifest(t *testing.T, dir, data string) string {
	t.Helper()
	path := filepath.Join(dir, manifestName)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write rubyast.toml: %v", err)
	}
	return path
}

func TestLoadManifestUpward(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, sampleManifest)

	nested := filepath.Join(root, "spec", "fixtures")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := loadManifest(nested)
	if err != nil {
		t.Fatalf("loadManifest: %v", err)
	}
	if !ok {
		t.Fatal("manifest must be found from a nested directory")
	}
	if m.Config.Project.Name != "corpus" {
		t.Errorf("name = %q, want corpus", m.Config.Project.Name)
	}
	if m.extension() != driver.SerializedExt {
		t.Errorf("extension = %q, want default", m.extension())
	}

	dirs := m.rootDirs()
	if len(dirs) != 2 {
		t.Fatalf("rootDirs = %v", dirs)
	}
	if !strings.HasSuffix(dirs[0], filepath.Join("spec", "fixtures")) {
		t.Errorf("dirs[0] = %q", dirs[0])
	}
	if !strings.HasSuffix(dirs[1], "lib") {
		t.Errorf("dirs[1] = %q", dirs[1])
	}
}

func TestLoadManifestConfigRejects(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"missing project", "[decode]\nroots = [\"x\"]\n"},
		{"missing name", "[project]\n[decode]\nroots = [\"x\"]\n"},
		{"missing decode", "[project]\nname = \"corpus\"\n"},
		{"empty roots", "[project]\nname = \"corpus\"\n[decode]\nroots = []\n"},
		{"extension without dot", "[project]\nname = \"corpus\"\n[decode]\nroots = [\"x\"]\nextension = \"pb\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tc.data)
			if _, err := loadManifestConfig(path); err == nil {
				t.Fatalf("config %q must be rejected", tc.name)
			}
		})
	}
}

func TestManifestExtension(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, sampleManifest+"extension = \".pb\"\n")

	cfg, err := loadManifestConfig(path)
	if err != nil {
		t.Fatalf("loadManifestConfig: %v", err)
	}
	m := &manifest{Path: path, Root: root, Config: cfg}
	if m.extension() != ".pb" {
		t.Errorf("extension = %q, want .pb", m.extension())
	}
}

func TestResolveBatchRoots(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, sampleManifest+"extension = \".pb\"\n")
	sub := filepath.Join(root, "lib")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	// Явный аргумент: каталог берётся как есть, суффикс — из манифеста.
	roots, ext, err := resolveBatchRoots([]string{sub})
	if err != nil {
		t.Fatalf("resolveBatchRoots: %v", err)
	}
	if len(roots) != 1 || roots[0] != sub {
		t.Errorf("roots = %v, want [%s]", roots, sub)
	}
	if ext != ".pb" {
		t.Errorf("ext = %q, want .pb", ext)
	}

	// Без аргумента каталоги приходят из [decode].roots.
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(root); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Errorf("restore wd: %v", err)
		}
	})
	roots, ext, err = resolveBatchRoots(nil)
	if err != nil {
		t.Fatalf("resolveBatchRoots: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("roots = %v", roots)
	}
	if !strings.HasSuffix(roots[0], filepath.Join("spec", "fixtures")) {
		t.Errorf("roots[0] = %q", roots[0])
	}
	if ext != ".pb" {
		t.Errorf("ext = %q, want .pb", ext)
	}
}

func TestResolveBatchRootsRejectsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.rb")
	if err := os.WriteFile(file, []byte("true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := resolveBatchRoots([]string{file}); err == nil {
		t.Fatal("file argument must be rejected")
	}
}
