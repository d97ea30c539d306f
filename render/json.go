package render

import (
	"io"
	"reflect"

	json "github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
	"github.com/nerdlist/nerdlist/script"
)

func writeJSON(w io.Writer, report *script.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// Schema returns the JSON schema of the json report format.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		return "nerdlist." + t.Name()
	}
	return reflector.Reflect(&script.Report{})
}

// WriteSchema encodes Schema to w.
func WriteSchema(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(Schema())
}
