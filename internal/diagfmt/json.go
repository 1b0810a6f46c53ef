package diagfmt

import (
	"encoding/json"
	"io"

	"dandiya/internal/diag"
)

// LocationJSON is the resolved position of a diagnostic.
type LocationJSON struct {
	File   string `json:"file"`
	Offset uint32 `json:"offset"`
	Line   uint32 `json:"line"`
	Col    uint32 `json:"col"`
}

// DiagnosticJSON is a diagnostic in JSON form.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Title    string       `json:"title"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	LineText string       `json:"line_text"`
}

// DiagnosticsOutput is the root object of the JSON output.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// BuildDiagnosticsOutput converts diagnostics to their JSON model.
func BuildDiagnosticsOutput(diags []diag.Diagnostic, opts JSONOpts) DiagnosticsOutput {
	out := DiagnosticsOutput{
		Diagnostics: make([]DiagnosticJSON, 0, len(diags)),
		Count:       len(diags),
	}
	for _, d := range diags {
		out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Message:  d.Message,
			Location: LocationJSON{
				File:   formatPath(d.Path, opts.PathMode, opts.BaseDir),
				Offset: d.Pos.Offset,
				Line:   d.Pos.Line,
				Col:    d.Pos.Col,
			},
			LineText: d.LineText,
		})
	}
	return out
}

// JSON writes the bag as an indented DiagnosticsOutput document.
func JSON(w io.Writer, bag *diag.Bag, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(bag.Items(), opts))
}
