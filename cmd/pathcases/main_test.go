package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/kuleuven/pathcases/fixture"
	"github.com/spf13/afero"
)

func execute(t *testing.T, fs afero.Fs, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCommand(fs)
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(t.Context())

	return stdout.String(), stderr.String(), err
}

func TestRunStdout(t *testing.T) {
	stdout, stderr, err := execute(t, afero.NewMemMapFs(), "--max-depth", "1")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(stdout, "[\n    { \"path\": \"\"") || !strings.HasSuffix(stdout, "},\n]\n") {
		t.Errorf("unexpected output:\n%s", stdout)
	}

	if !strings.Contains(stderr, "Count Pathname-Check-Entries") {
		t.Errorf("entry count not logged: %s", stderr)
	}
}

func TestRunOutputFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	if _, _, err := execute(t, fs, "--max-depth", "2", "-f", "json", "-o", "/out/paths.json", "--digest"); err != nil {
		t.Fatal(err)
	}

	data, err := afero.ReadFile(fs, "/out/paths.json")
	if err != nil {
		t.Fatal(err)
	}

	var entries []fixture.Entry

	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}

	if len(entries) == 0 || entries[0].Path != "" || entries[0].Basename != "/" {
		t.Errorf("unexpected first entry %+v", entries)
	}

	if ok, _ := afero.Exists(fs, "/out/paths.json"+fixture.DigestSuffix); !ok {
		t.Error("digest file missing")
	}
}

func TestRunConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	content := `{"format": "yaml", "grammar": {"segments": ["x"], "separators": ["/"], "roots": [""], "file_bodies": ["f"], "extensions": [""], "stems": [], "max_leading": 0, "max_depth": 2}}`

	if err := afero.WriteFile(fs, "/pathcases.json", []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := execute(t, fs, "--config", "/pathcases.json")
	if err != nil {
		t.Fatal(err)
	}

	// "" (extension boundary), "a" (name), then "x", "x/", "x/f".
	if n := strings.Count(stdout, "- path:"); n != 5 {
		t.Errorf("got %d entries, want 5:\n%s", n, stdout)
	}
}

func TestRunSeparator(t *testing.T) {
	fs := afero.NewMemMapFs()

	content := `{"format": "json", "grammar": {"segments": ["x"], "separators": ["\\"], "roots": ["", "\\"], "file_bodies": ["f"], "extensions": ["", ".y"], "stems": ["."], "max_leading": 1, "max_depth": 2}}`

	if err := afero.WriteFile(fs, "/pathcases.json", []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := execute(t, fs, "--config", "/pathcases.json", "--separator", `\`)
	if err != nil {
		t.Fatal(err)
	}

	var entries []fixture.Entry

	if err := json.Unmarshal([]byte(stdout), &entries); err != nil {
		t.Fatal(err)
	}

	expected := map[string]fixture.Entry{
		`\x\f.y`: {Path: `\x\f.y`, IsAbsolute: "true", Basename: "f.y", Dirname: `\x`, Extname: ".y", Parent: `\x`, Cleanpath: `\x\f.y`},
		`\.`:     {Path: `\.`, IsAbsolute: "true", Basename: ".", Dirname: `\`, Extname: "", Parent: `\`, Cleanpath: `\`},
	}

	found := 0

	for _, entry := range entries {
		want, ok := expected[entry.Path]
		if !ok {
			continue
		}

		found++

		if entry != want {
			t.Errorf("entry for %q = %+v, want %+v", entry.Path, entry, want)
		}
	}

	if found != 2 {
		t.Errorf("found %d of the expected entries, want 2:\n%s", found, stdout)
	}
}

func TestRunInvalidSettings(t *testing.T) {
	if _, _, err := execute(t, afero.NewMemMapFs(), "--max-depth", "0", "--format", "xml"); err == nil {
		t.Error("expected an error for invalid settings")
	}

	if _, _, err := execute(t, afero.NewMemMapFs(), "--max-leading", "9223372036854775807"); err == nil {
		t.Error("expected an error for an oversized leading run")
	}

	if _, _, err := execute(t, afero.NewMemMapFs(), "extra"); err == nil {
		t.Error("expected an error for positional arguments")
	}
}
