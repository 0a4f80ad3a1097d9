package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"moc/internal/diag"
)

// DiagnosticJSON is one diagnostic of a machine-readable report.
type DiagnosticJSON struct {
	Severity string `json:"severity" msgpack:"severity"`
	Code     string `json:"code" msgpack:"code"`
	Line     uint32 `json:"line" msgpack:"line"`
	Col      uint32 `json:"col,omitempty" msgpack:"col,omitempty"`
	Char     string `json:"char,omitempty" msgpack:"char,omitempty"` // U+XXXX
	Message  string `json:"message" msgpack:"message"`
}

// Report is the root of a machine-readable check report.
type Report struct {
	Tool        string           `json:"tool" msgpack:"tool"`
	Version     string           `json:"version" msgpack:"version"`
	Input       string           `json:"input" msgpack:"input"`
	Lines       uint32           `json:"lines" msgpack:"lines"`
	Illegal     int              `json:"illegal" msgpack:"illegal"`
	Clean       bool             `json:"clean" msgpack:"clean"`
	Dropped     int              `json:"dropped,omitempty" msgpack:"dropped,omitempty"`
	Diagnostics []DiagnosticJSON `json:"diagnostics" msgpack:"diagnostics"`
}

// ReportMeta identifies the run a report belongs to.
type ReportMeta struct {
	Tool    string
	Version string
	Input   string
}

// BuildReport формирует структуру отчёта без сериализации.
func BuildReport(meta ReportMeta, bag *diag.Bag, summary diag.Summary) Report {
	rep := Report{
		Tool:        meta.Tool,
		Version:     meta.Version,
		Input:       meta.Input,
		Lines:       summary.Lines,
		Illegal:     summary.Illegal,
		Clean:       summary.Clean(),
		Diagnostics: []DiagnosticJSON{},
	}
	if bag == nil {
		return rep
	}
	rep.Dropped = bag.Dropped()
	rep.Diagnostics = make([]DiagnosticJSON, 0, bag.Len())
	for _, d := range bag.Items() {
		dj := DiagnosticJSON{
			Severity: d.Severity.Label(),
			Code:     d.Code.ID(),
			Line:     d.Line,
			Col:      d.Col,
			Message:  d.Message,
		}
		if d.Code == diag.CharIllegal {
			dj.Char = fmt.Sprintf("U+%04X", d.Char)
		}
		rep.Diagnostics = append(rep.Diagnostics, dj)
	}
	return rep
}

// WriteReport encodes rep to w.
func WriteReport(w io.Writer, rep Report, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(rep)
	}
	return fmt.Errorf("unsupported report format %d", format)
}

// ReadReport decodes a report written by WriteReport.
func ReadReport(r io.Reader, format Format) (Report, error) {
	var rep Report
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&rep)
	case FormatMsgpack:
		err = msgpack.NewDecoder(r).Decode(&rep)
	default:
		err = fmt.Errorf("unsupported report format %d", format)
	}
	return rep, err
}
