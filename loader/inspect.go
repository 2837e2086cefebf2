package loader

import (
	"github.com/xmazu/envload/envfile"
	"github.com/xmazu/envload/source"
)

type DiagnosticReport struct {
	Line    int    `json:"line"`
	Kind    string `json:"kind"`
	Key     string `json:"key,omitempty"`
	Message string `json:"message"`
}

// Report is the value-free view of an env file: which keys it would set and
// which lines it would skip.
type Report struct {
	Path        string             `json:"path"`
	Empty       bool               `json:"empty"`
	Keys        []string           `json:"keys"`
	Diagnostics []DiagnosticReport `json:"diagnostics"`
}

func (r Report) HasWarnings() bool {
	return len(r.Diagnostics) > 0
}

func NewReport(path, content string) Report {
	res := envfile.Parse(content)

	r := Report{
		Path:        path,
		Empty:       len(content) == 0,
		Keys:        res.UniqueKeys(),
		Diagnostics: []DiagnosticReport{},
	}
	for _, d := range res.Diagnostics {
		r.Diagnostics = append(r.Diagnostics, DiagnosticReport{
			Line:    d.Line,
			Kind:    d.Kind.String(),
			Key:     d.Key,
			Message: d.Error(),
		})
	}
	return r
}

// Inspect reads and validates name without touching any environment store.
func Inspect(src source.Source, name string) (Report, error) {
	if name == "" {
		name = DefaultFileName
	}
	content, err := src.Read(name)
	if err != nil {
		return Report{}, err
	}
	return NewReport(name, content), nil
}
