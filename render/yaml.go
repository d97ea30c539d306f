package render

import (
	"io"

	"github.com/nerdlist/nerdlist/script"
	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, report *script.Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return err
	}
	return encoder.Close()
}
