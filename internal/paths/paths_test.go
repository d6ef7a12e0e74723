package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveConfigDirPrecedence(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/config")

	got, err := ResolveConfigDir("/flag/config")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/flag/config" {
		t.Errorf("flag should win: got %q", got)
	}

	got, err = ResolveConfigDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/env/config" {
		t.Errorf("env should win over default: got %q", got)
	}

	t.Setenv(EnvConfigDir, "")
	got, err = ResolveConfigDir("")
	if err != nil {
		t.Fatal(err)
	}
	cwd, _ := os.Getwd()
	if want := filepath.Join(cwd, DefaultConfigDirName); got != want {
		t.Errorf("default = %q, want %q", got, want)
	}
}

func TestResolveDBPathPrecedence(t *testing.T) {
	t.Setenv(EnvDBPath, "/env/larder.db")

	got, err := ResolveDBPath("/flag/larder.db", "/config/larder.db")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/flag/larder.db" {
		t.Errorf("flag should win: got %q", got)
	}

	got, err = ResolveDBPath("", "/config/larder.db")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/config/larder.db" {
		t.Errorf("config should win over env: got %q", got)
	}

	got, err = ResolveDBPath("", "")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/env/larder.db" {
		t.Errorf("env should win over default: got %q", got)
	}

	t.Setenv(EnvDBPath, "")
	got, err = ResolveDBPath("", "")
	if err != nil {
		t.Fatal(err)
	}
	cwd, _ := os.Getwd()
	if want := filepath.Join(cwd, DefaultDBName); got != want {
		t.Errorf("default = %q, want %q", got, want)
	}
}

func TestResolvePathsAreAbsolute(t *testing.T) {
	got, err := ResolveDBPath("relative.db", "")
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("ResolveDBPath should return an absolute path, got %q", got)
	}
}
