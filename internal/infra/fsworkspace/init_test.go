package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/gendata/internal/domain"
	"github.com/aalvaropc/gendata/internal/infra/config"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "gendata.yaml"))
	assertFileExists(t, filepath.Join(tmp, "gendata.md"))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))
}

func TestInitializer_Init_TemplateConfigLoads(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	cfg, err := config.NewLoader().LoadConfig(filepath.Join(tmp, domain.DefaultConfigFileName))
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected template config to match defaults, got %+v", cfg)
	}
}

func TestInitializer_Init_CreatesMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "a", "b")

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: root}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	assertFileExists(t, filepath.Join(root, "gendata.md"))
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	seed := filepath.Join(tmp, "gendata.md")
	if err := os.WriteFile(seed, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing gendata.md: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(seed)
	if err != nil {
		t.Fatalf("read gendata.md: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected gendata.md preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(seed)
	if err != nil {
		t.Fatalf("read gendata.md after force: %v", err)
	}
	if !strings.Contains(string(b), "# Heading 1") {
		t.Fatalf("expected gendata.md overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}
