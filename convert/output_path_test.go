package convert

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"docxhtml/config"
	"docxhtml/state"
)

func setupTestEnvForOutputPath(t *testing.T, noDirs bool, transliterate bool, template string) *state.LocalEnv {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Document.FileNameTransliterate = transliterate
	cfg.Document.OutputNameTemplate = template

	return &state.LocalEnv{
		Log:    logger,
		Cfg:    cfg,
		NoDirs: noDirs,
	}
}

func TestBuildOutputPath(t *testing.T) {
	dst := filepath.Join(os.TempDir(), "out")

	tests := []struct {
		name          string
		noDirs        bool
		transliterate bool
		template      string
		want          string
	}{
		{"keep dirs", false, false, "", filepath.Join(dst, "reports", "q1.html")},
		{"no dirs", true, false, "", filepath.Join(dst, "q1.html")},
		{"template", true, false, "{{ .Title }}", filepath.Join(dst, "Quarterly Report.html")},
		{"template with dirs", false, false, "{{ .Language }}/{{ .Title }}", filepath.Join(dst, "reports", "en-GB", "Quarterly Report.html")},
		{"transliterate", true, true, "{{ .Title }}", filepath.Join(dst, "quarterly-report.html")},
		{"template escaping destination", true, false, "../../{{ .SourceFile }}", filepath.Join(dst, "q1.html")},
		{"broken template falls back", true, false, "{{ .Nothing }}", filepath.Join(dst, "q1.html")},
		{"empty expansion falls back", true, false, "{{ if false }}x{{ end }}", filepath.Join(dst, "q1.html")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, tt.noDirs, tt.transliterate, tt.template)
			if got := buildOutputPath(testSource(), dst, env); got != tt.want {
				t.Errorf("buildOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetermineOutputDir(t *testing.T) {
	env := setupTestEnvForOutputPath(t, false, false, "")
	if got, want := determineOutputDir(filepath.Join("a", "b", "c.yaml"), "/out", env), filepath.Join("/out", "a", "b"); got != want {
		t.Errorf("determineOutputDir() = %q, want %q", got, want)
	}

	env.NoDirs = true
	if got := determineOutputDir(filepath.Join("a", "b", "c.yaml"), "/out", env); got != "/out" {
		t.Errorf("determineOutputDir() with NoDirs = %q, want /out", got)
	}
}

func TestBuildDefaultFileName(t *testing.T) {
	tests := []struct {
		src           string
		transliterate bool
		want          string
	}{
		{"model.yaml", false, "model.html"},
		{filepath.Join("dir", "Rapport été.yml"), false, "Rapport été.html"},
		{filepath.Join("dir", "Rapport été.yml"), true, "rapport-ete.html"},
		{".hidden.yaml", false, "hidden.html"},
		{"noext", false, "noext.html"},
	}
	for _, tt := range tests {
		env := setupTestEnvForOutputPath(t, false, tt.transliterate, "")
		if got := buildDefaultFileName(tt.src, env); got != tt.want {
			t.Errorf("buildDefaultFileName(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestSplitPath(t *testing.T) {
	sep := string(os.PathSeparator)
	tests := []struct {
		path string
		want []string
	}{
		{"", []string{}},
		{"file", []string{"file"}},
		{"a" + sep + "b" + sep + "c", []string{"a", "b", "c"}},
		{"a" + sep + "b" + sep, []string{"a", "b"}},
		{".." + sep + "a" + sep + "." + sep + "b", []string{"a", "b"}},
	}
	for _, tt := range tests {
		if got := splitPath(tt.path); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitPath(%q) = %#v, want %#v", tt.path, got, tt.want)
		}
	}
}

func TestCleanPathSegment(t *testing.T) {
	env := setupTestEnvForOutputPath(t, false, false, "")
	if got := cleanPathSegment("..", env); got != "_bad_file_name_" {
		t.Errorf("cleanPathSegment(..) = %q", got)
	}
	if got := cleanPathSegment("Report: Q1", env); got == "" {
		t.Error("cleanPathSegment() returned empty segment")
	}

	env.Cfg.Document.FileNameTransliterate = true
	if got := cleanPathSegment("Привет мир", env); got != "privet-mir" {
		t.Errorf("cleanPathSegment() = %q, want privet-mir", got)
	}
}

func TestAssemblePathWithSubdirs_Empty(t *testing.T) {
	env := setupTestEnvForOutputPath(t, false, false, "")
	if got := assemblePathWithSubdirs("/out", "", env); got != "/out" {
		t.Errorf("assemblePathWithSubdirs() = %q, want /out", got)
	}
}
