// Package render writes script reports in the supported output formats.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/nerdlist/nerdlist/script"
	"github.com/nerdlist/nerdlist/util"
)

// Format is an output format name.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	Tree Format = "tree"
)

// Formats returns every supported format.
func Formats() []string {
	return []string{string(Text), string(JSON), string(YAML), string(Tree)}
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range Formats() {
		if f == name {
			return Format(name), nil
		}
	}

	if suggestion, ok := util.Suggest(name, Formats()).Get(); ok {
		return "", fmt.Errorf("unknown format %q, did you mean %q?", name, suggestion)
	}
	return "", fmt.Errorf("unknown format %q, expected one of %s", name, strings.Join(Formats(), ", "))
}

// Report writes report to w in the given format.
func Report(w io.Writer, report *script.Report, format Format) error {
	switch format {
	case Text:
		return writeText(w, report)
	case JSON:
		return writeJSON(w, report)
	case YAML:
		return writeYAML(w, report)
	case Tree:
		return writeTree(w, report)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
