// Package scss extracts color variable declarations from stylesheet sources.
package scss

import (
	"regexp"
	"strings"

	"github.com/lunit-heesungyang/scss-color-similarity/internal/model"
)

// $name: #abc; or $name: #aabbcc;
var colorVarRegex = regexp.MustCompile(`\$([\w-]+)\s*:\s*(#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3}))\s*;`)

// Extract scans contents line by line and collects color variables.
// Lines without a declaration are ignored; a name declared more than once
// takes the value of its last declaration.
func Extract(contents string) *model.Palette {
	p := model.NewPalette()
	for i, line := range strings.Split(contents, "\n") {
		if v, ok := ParseLine(line); ok {
			v.Line = i + 1
			p.Set(v)
		}
	}
	return p
}

// ParseLine matches the first color variable declaration on a single line
func ParseLine(line string) (model.ColorVariable, bool) {
	matches := colorVarRegex.FindStringSubmatch(line)
	if matches == nil {
		return model.ColorVariable{}, false
	}
	return model.ColorVariable{Name: matches[1], Hex: matches[2]}, true
}
