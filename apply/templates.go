package apply

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"xlstyle/config"
	"xlstyle/sheet"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	Title      string
	SourceFile string
	WorkbookID string
	Sheets     []string
	Styles     int
}

func expandTemplate(wb *sheet.Workbook, name config.TemplateFieldName, field, src string) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	sheets := wb.Sheets()
	values := Values{
		Context:    string(name),
		Title:      wb.Title(),
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		WorkbookID: wb.ID().String(),
		Sheets:     make([]string, 0, len(sheets)),
		Styles:     wb.Styles().Len(),
	}
	for _, ws := range sheets {
		values.Sheets = append(values.Sheets, ws.Name())
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
