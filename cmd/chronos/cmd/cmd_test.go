package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/msto63/chronos/pkg/core/config"
)

type result struct {
	stdout string
	stderr string
	code   int
}

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "chronos.toml")
	content := fmt.Sprintf("[general]\ndata_dir = %q\nlog_level = \"error\"\n\n[store]\npath = %q\n",
		filepath.Join(dir, "data"), filepath.Join(dir, "data", "settings.db"))
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Setenv(config.EnvConfigPath, cfgPath)
	return dir
}

func writeDoc(t *testing.T, dir, name, source string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func run(stdin string, args ...string) result {
	cfgFile = ""
	verbose = false
	parseOutput = OutputJSON
	parseCompact = false
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	code := Execute()
	return result{stdout: out.String(), stderr: errOut.String(), code: code}
}

func TestParse_JSON(t *testing.T) {
	dir := setupEnv(t)
	doc := writeDoc(t, dir, "a.chronos", "- [2020] {Team} Kickoff | first\n> notoday\n")

	r := run("", "parse", doc)
	if r.code != 0 {
		t.Fatalf("code = %d, stderr = %s", r.code, r.stderr)
	}
	for _, want := range []string{`"content": "Kickoff"`, `"cDescription": "first"`, `"noToday": true`, `"groups"`} {
		if !strings.Contains(r.stdout, want) {
			t.Errorf("stdout missing %s:\n%s", want, r.stdout)
		}
	}
}

func TestParse_YAML(t *testing.T) {
	dir := setupEnv(t)
	doc := writeDoc(t, dir, "a.chronos", "* [2024-03-15] Release\n")

	r := run("", "parse", "--output", "yaml", doc)
	if r.code != 0 {
		t.Fatalf("code = %d, stderr = %s", r.code, r.stderr)
	}
	if !strings.Contains(r.stdout, "content: Release") || !strings.Contains(r.stdout, "type: point") {
		t.Errorf("stdout = %s", r.stdout)
	}
}

func TestParse_Stdin(t *testing.T) {
	setupEnv(t)

	r := run("= [2024-06] Midsummer\n", "parse", "--compact", "-")
	if r.code != 0 {
		t.Fatalf("code = %d, stderr = %s", r.code, r.stderr)
	}
	if !strings.Contains(r.stdout, `"content":"Midsummer"`) {
		t.Errorf("stdout = %s", r.stdout)
	}
}

func TestParse_Failure(t *testing.T) {
	dir := setupEnv(t)
	doc := writeDoc(t, dir, "bad.chronos", "- [2020-13] Broken\n")

	r := run("", "parse", doc)
	if r.code != 1 {
		t.Errorf("code = %d, want 1", r.code)
	}
	if !strings.Contains(r.stderr, "Error(s) parsing chronos markdown") ||
		!strings.Contains(r.stderr, "  - Line 2: Invalid month: 13. Must be between 01-12") {
		t.Errorf("stderr = %s", r.stderr)
	}
	if r.stdout != "" {
		t.Errorf("stdout = %q, want empty", r.stdout)
	}
}

func TestParse_UnknownFormat(t *testing.T) {
	dir := setupEnv(t)
	doc := writeDoc(t, dir, "a.chronos", "- [2020] A\n")

	r := run("", "parse", "-o", "xml", doc)
	if r.code != 1 || !strings.Contains(r.stderr, "unknown output format: xml") {
		t.Errorf("code = %d, stderr = %s", r.code, r.stderr)
	}
}

func TestParse_MissingFile(t *testing.T) {
	dir := setupEnv(t)

	r := run("", "parse", filepath.Join(dir, "missing.chronos"))
	if r.code != 1 || !strings.Contains(r.stderr, "failed to read document") {
		t.Errorf("code = %d, stderr = %s", r.code, r.stderr)
	}
}

func TestCheck(t *testing.T) {
	dir := setupEnv(t)
	good := writeDoc(t, dir, "good.chronos", "- [2020] A\n= [2021] M\n")
	bad := writeDoc(t, dir, "bad.chronos", "- [2020-13] A\n> bogus\n")

	r := run("", "check", good)
	if r.code != 0 || !strings.Contains(r.stdout, "(1 items, 1 markers, 0 groups)") {
		t.Errorf("code = %d, stdout = %s", r.code, r.stdout)
	}

	r = run("", "check", good, bad)
	if r.code != 1 {
		t.Errorf("code = %d, want 1", r.code)
	}
	for _, want := range []string{
		"- Line 2: Invalid month: 13. Must be between 01-12 [DATE_RANGE]",
		"- Line 3: Unrecognized flag: > bogus [UNKNOWN_DIRECTIVE]",
		"1 of 2 documents invalid",
	} {
		if !strings.Contains(r.stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, r.stdout)
		}
	}
}

func TestSettings(t *testing.T) {
	setupEnv(t)

	if r := run("", "settings", "get", "locale"); r.code != 0 || strings.TrimSpace(r.stdout) != "en" {
		t.Errorf("get locale = %q (code %d), want en", r.stdout, r.code)
	}

	if r := run("", "settings", "set", "locale", "de"); r.code != 0 {
		t.Fatalf("set code = %d, stderr = %s", r.code, r.stderr)
	}
	if r := run("", "settings", "get", "locale"); strings.TrimSpace(r.stdout) != "de" {
		t.Errorf("get locale = %q, want de", r.stdout)
	}

	r := run("", "settings", "get")
	if !strings.Contains(r.stdout, "round_ranges") || !strings.Contains(r.stdout, "use_utc") {
		t.Errorf("get = %s", r.stdout)
	}

	if r := run("", "settings", "set", "use_utc", "sometimes"); r.code != 1 {
		t.Errorf("invalid set code = %d, want 1", r.code)
	}

	if r := run("", "settings", "reset"); r.code != 0 {
		t.Fatalf("reset code = %d, stderr = %s", r.code, r.stderr)
	}
	if r := run("", "settings", "get", "locale"); strings.TrimSpace(r.stdout) != "en" {
		t.Errorf("get locale after reset = %q, want en", r.stdout)
	}
}

func TestSettingsSave(t *testing.T) {
	setupEnv(t)

	if r := run("", "settings", "save", "--locale", "ja", "--local-time"); r.code != 0 {
		t.Fatalf("save code = %d, stderr = %s", r.code, r.stderr)
	}

	r := run("", "settings", "get")
	for _, want := range []string{"locale        ja", "use_utc       false", "round_ranges  false"} {
		if !strings.Contains(r.stdout, want) {
			t.Errorf("get missing %q:\n%s", want, r.stdout)
		}
	}
}

func TestVersion(t *testing.T) {
	setupEnv(t)

	r := run("", "version")
	if r.code != 0 || !strings.Contains(r.stdout, "chronos v1.0.0") {
		t.Errorf("code = %d, stdout = %s", r.code, r.stdout)
	}
}

func TestDoctor(t *testing.T) {
	setupEnv(t)

	r := run("", "doctor")
	if r.code != 0 {
		t.Fatalf("code = %d, stdout = %s", r.code, r.stdout)
	}
	for _, want := range []string{"chronos v1.0.0: healthy", "[+] config", "[+] settings-store"} {
		if !strings.Contains(r.stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, r.stdout)
		}
	}
}
