package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"docxhtml/config"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	Title      string
	Language   string
	SourceFile string
	DocumentID string
	Styles     int
}

func expandTemplate(s *source, name config.TemplateFieldName, field string) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		Title:      s.doc.Title,
		Language:   s.lang,
		SourceFile: strings.TrimSuffix(filepath.Base(s.name), filepath.Ext(s.name)),
		DocumentID: s.doc.ID,
	}
	if s.doc.Styles != nil {
		values.Styles = len(s.doc.Styles.Styles)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
