// Package apply runs styling scripts: YAML documents describing a workbook,
// its named styles and the ranges they are applied to. Every script produces
// the styles part of the resulting workbook.
package apply

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"xlstyle/sheet"
	"xlstyle/style"
)

type (
	// NamedStyle is a concrete style built once and assigned to ranges by name.
	NamedStyle struct {
		Name  string       `yaml:"name"`
		Style style.Config `yaml:"style"`
	}

	// Step styles one range. Use assigns a named style, Style merges a style
	// configuration into what cells already have. When both are present the
	// named style is assigned first.
	Step struct {
		Range string       `yaml:"range"`
		Use   string       `yaml:"use,omitempty"`
		Style style.Config `yaml:"style,omitempty"`
	}

	SheetScript struct {
		Name  string `yaml:"name"`
		Steps []Step `yaml:"ranges"`
	}

	Script struct {
		Title  string        `yaml:"title"`
		Styles []NamedStyle  `yaml:"styles"`
		Sheets []SheetScript `yaml:"sheets"`
	}
)

// LoadScript decodes a styling script. Unknown fields are errors.
func LoadScript(r io.Reader) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read script: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: script is empty", style.ErrConfiguration)
		}
		return nil, fmt.Errorf("%w: unable to decode script: %w", style.ErrConfiguration, err)
	}
	if len(s.Sheets) == 0 {
		return nil, fmt.Errorf("%w: script has no sheets", style.ErrConfiguration)
	}
	return &s, nil
}

// Build creates the workbook described by s. Steps run in script order, the
// first failing step stops the build.
func Build(s *Script, log *zap.Logger, options ...func(*sheet.Options)) (*sheet.Workbook, error) {
	wb := sheet.New(log, options...)
	wb.SetTitle(s.Title)

	named := make(map[string]int, len(s.Styles))
	for i, ns := range s.Styles {
		if ns.Name == "" {
			return nil, fmt.Errorf("%w: style #%d has no name", style.ErrConfiguration, i+1)
		}
		if _, exists := named[ns.Name]; exists {
			return nil, fmt.Errorf("%w: style %q is defined more than once", style.ErrConfiguration, ns.Name)
		}
		cs := wb.NewStyle()
		if err := cs.ApplyFromConfig(ns.Style); err != nil {
			return nil, fmt.Errorf("style %q: %w", ns.Name, err)
		}
		named[ns.Name] = cs.Index()
	}

	for _, ss := range s.Sheets {
		ws, err := wb.AddSheet(ss.Name)
		if err != nil {
			return nil, err
		}
		for i, step := range ss.Steps {
			if err := runStep(ws, step, named); err != nil {
				return nil, fmt.Errorf("sheet %q, range #%d (%s): %w", ws.Name(), i+1, step.Range, err)
			}
		}
	}
	return wb, nil
}

func runStep(ws *sheet.Worksheet, step Step, named map[string]int) error {
	if step.Use == "" && step.Style == nil {
		return fmt.Errorf("%w: nothing to apply, either use or style is required", style.ErrConfiguration)
	}
	sel, err := ws.Selection(step.Range)
	if err != nil {
		return err
	}
	if step.Use != "" {
		idx, ok := named[step.Use]
		if !ok {
			return fmt.Errorf("%w: unknown style %q", style.ErrConfiguration, step.Use)
		}
		if err := ws.AssignStyle(sel.Range, idx); err != nil {
			return err
		}
	}
	if step.Style != nil {
		return sel.Apply(step.Style)
	}
	return nil
}
