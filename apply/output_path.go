package apply

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"xlstyle/config"
	"xlstyle/sheet"
	"xlstyle/state"
)

const (
	stylesExt  = ".styles.xml"
	listingExt = ".cells.txt"
)

// buildOutputPath returns the path of the styles part for workbook built from
// src. Without a name template the output keeps the relative location of the
// script under dst. Template expansion may introduce subdirectories, every
// segment is cleaned and optionally transliterated.
func buildOutputPath(wb *sheet.Workbook, src, dst string, env *state.LocalEnv) string {
	outDir := filepath.Join(dst, filepath.Dir(src))
	defaultFile := cleanPathSegment(strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)), env) + stylesExt

	if env.Cfg.Styling.OutputNameTemplate == "" {
		return filepath.Join(outDir, defaultFile)
	}

	expandedName, err := expandTemplate(wb, config.OutputNameTemplateFieldName, env.Cfg.Styling.OutputNameTemplate, src)
	if err != nil {
		env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		return filepath.Join(outDir, defaultFile)
	}

	segments := splitPath(filepath.FromSlash(expandedName))
	if len(segments) == 0 {
		return filepath.Join(outDir, defaultFile)
	}
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, dst)
	for _, s := range segments {
		parts = append(parts, cleanPathSegment(s, env))
	}
	parts[len(parts)-1] += stylesExt
	return filepath.Join(parts...)
}

// listingPath places cell listing next to the styles part.
func listingPath(outputName string) string {
	return strings.TrimSuffix(outputName, stylesExt) + listingExt
}

func splitPath(path string) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); ; head, tail = filepath.Split(head) {
		if tail != "" && tail != "." && tail != ".." {
			segments = slices.Insert(segments, 0, tail)
		}
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" || head == path {
			break
		}
		path = head
	}
	return segments
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Styling.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
