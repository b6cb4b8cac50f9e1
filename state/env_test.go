package state

import (
	"context"
	"log"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"docxhtml/config"
	"docxhtml/css"
	"docxhtml/docx"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
	if EnvFromContext(ctx) != env {
		t.Error("Environment must be shared through context")
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))

	time.Sleep(10 * time.Millisecond)
	if uptime := env.Uptime(); uptime < 10*time.Millisecond {
		t.Errorf("Uptime() = %v, expected at least 10ms", uptime)
	}
}

func TestLocalEnv_DocumentLanguage(t *testing.T) {
	tests := []struct {
		name string
		env  LocalEnv
		want string
	}{
		{"nothing", LocalEnv{}, ""},
		{"configuration", LocalEnv{Cfg: &config.Config{Document: config.DocumentConfig{Language: "de"}}}, "de"},
		{"command line wins", LocalEnv{Language: "en", Cfg: &config.Config{Document: config.DocumentConfig{Language: "de"}}}, "en"},
		{"blank configuration", LocalEnv{Cfg: &config.Config{}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.env.DocumentLanguage(); got != tt.want {
				t.Errorf("DocumentLanguage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocalEnv_RenderOptions(t *testing.T) {
	sheet := &css.Stylesheet{}
	env := &LocalEnv{
		Language:    "pt-BR",
		Stylesheets: []*css.Stylesheet{sheet},
		Cfg:         &config.Config{Document: config.DocumentConfig{Language: "de", EmptyText: "Leer"}},
	}

	opts := env.RenderOptions()
	if opts.Language != "pt-BR" {
		t.Errorf("Language = %q, want pt-BR", opts.Language)
	}
	if opts.EmptyText != "Leer" {
		t.Errorf("EmptyText = %q, want Leer", opts.EmptyText)
	}
	if len(opts.Stylesheets) != 1 || opts.Stylesheets[0] != sheet {
		t.Errorf("Stylesheets = %v", opts.Stylesheets)
	}

	if opts := (&LocalEnv{}).RenderOptions(); opts.Language != "" || opts.EmptyText != "" || opts.Stylesheets != nil {
		t.Errorf("empty environment produced %+v", opts)
	}
}

func TestLocalEnv_ApplyTheme(t *testing.T) {
	loaded := docx.ThemeColors{"accent1": "#4472c4"}
	own := docx.ThemeColors{"accent1": "#ff0000"}

	tests := []struct {
		name    string
		env     LocalEnv
		doc     *docx.Document
		changed bool
		want    string
	}{
		{"document without theme", LocalEnv{Theme: loaded}, &docx.Document{}, true, "#4472c4"},
		{"document theme wins", LocalEnv{Theme: loaded}, &docx.Document{Theme: own}, false, "#ff0000"},
		{"nothing loaded", LocalEnv{}, &docx.Document{}, false, ""},
		{"nil document", LocalEnv{Theme: loaded}, nil, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.env.ApplyTheme(tt.doc); got != tt.changed {
				t.Errorf("ApplyTheme() = %v, want %v", got, tt.changed)
			}
			if tt.doc != nil && tt.doc.Theme.Lookup("accent1") != tt.want {
				t.Errorf("accent1 = %q, want %q", tt.doc.Theme.Lookup("accent1"), tt.want)
			}
		})
	}
}

func TestLocalEnv_RedirectStdLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	env := &LocalEnv{Log: zap.New(core)}

	env.RedirectStdLog()
	if env.restoreStdLog == nil {
		t.Fatal("Expected restoreStdLog to be set")
	}
	log.Print("from standard logger")
	env.RestoreStdLog()
	log.Print("after restore")

	if logs.Len() != 1 || logs.All()[0].Message != "from standard logger" {
		t.Errorf("unexpected redirected entries: %v", logs.All())
	}
	if env.restoreStdLog != nil {
		t.Error("restoreStdLog must be cleared")
	}
}

func TestLocalEnv_NilLogger(t *testing.T) {
	env := &LocalEnv{}
	env.RedirectStdLog()
	if env.restoreStdLog != nil {
		t.Error("Expected restoreStdLog to remain nil")
	}
	env.RestoreStdLog()
}

func TestLocalEnv_RedirectAndRestore(t *testing.T) {
	env := &LocalEnv{Log: zaptest.NewLogger(t)}
	for i := range 3 {
		env.RedirectStdLog()
		if env.restoreStdLog == nil {
			t.Errorf("Iteration %d: restoreStdLog not set", i)
		}
		env.RestoreStdLog()
	}
}
