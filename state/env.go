// Package state defines shared program state.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"docxhtml/config"
	"docxhtml/convert/html"
	"docxhtml/css"
	"docxhtml/docx"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// used by convert subcommand
	NoDirs    bool
	Overwrite bool
	// language tag from command line, wins over configuration
	Language string
	// forced code page for non UTF-8 names in archives
	CodePage encoding.Encoding
	// theme colors for documents which do not carry their own
	Theme docx.ThemeColors
	// user stylesheets appended to every produced page
	Stylesheets []*css.Stylesheet

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &LocalEnv{start: time.Now()})
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// DocumentLanguage returns language requested for output: command line value
// first, then configuration. Empty result leaves the choice to the document.
func (e *LocalEnv) DocumentLanguage() string {
	if e.Language != "" {
		return e.Language
	}
	if e.Cfg != nil {
		return e.Cfg.Document.Language
	}
	return ""
}

// RenderOptions returns renderer options for a single conversion.
func (e *LocalEnv) RenderOptions() html.Options {
	opts := html.Options{
		Language:    e.DocumentLanguage(),
		Stylesheets: e.Stylesheets,
	}
	if e.Cfg != nil {
		opts.EmptyText = e.Cfg.Document.EmptyText
	}
	return opts
}

// ApplyTheme gives doc theme colors loaded from command line unless document
// has its own. It reports whether doc was changed.
func (e *LocalEnv) ApplyTheme(doc *docx.Document) bool {
	if doc == nil || len(doc.Theme) > 0 || len(e.Theme) == 0 {
		return false
	}
	doc.Theme = e.Theme
	return true
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
		e.restoreStdLog = nil
	}
}
