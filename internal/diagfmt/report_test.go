package diagfmt

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"moc/internal/diag"
)

func sampleReport() Report {
	bag := diag.NewBag(0)
	rep := &diag.BagReporter{Bag: bag}
	diags := make([]diag.Diagnostic, 0, 6)
	for i := uint32(1); i <= 6; i++ {
		diags = append(diags, diag.IllegalChar(2, i, '😀', "GRINNING FACE"))
	}
	diag.EmitLine(rep, 2, "😀😀😀😀😀😀\n", diags)
	summary := diag.Summary{Lines: 2, Illegal: 6}
	return BuildReport(ReportMeta{Tool: "moc_check", Version: "0.1.0", Input: "in.txt"}, bag, summary)
}

func TestBuildReport(t *testing.T) {
	rep := sampleReport()
	if rep.Clean || rep.Illegal != 6 || rep.Lines != 2 {
		t.Fatalf("report header = %+v", rep)
	}
	if len(rep.Diagnostics) != diag.CharErrLimit+1 {
		t.Fatalf("got %d diagnostics", len(rep.Diagnostics))
	}
	first := rep.Diagnostics[0]
	want := DiagnosticJSON{Severity: "error", Code: "CHR1001", Line: 2, Col: 1, Char: "U+1F600", Message: "GRINNING FACE"}
	if first != want {
		t.Fatalf("first = %+v, want %+v", first, want)
	}
	last := rep.Diagnostics[len(rep.Diagnostics)-1]
	if last.Code != "CHR1002" || last.Char != "" || last.Message != "... and 1 other(s)." {
		t.Fatalf("last = %+v", last)
	}
}

func TestBuildReportClean(t *testing.T) {
	rep := BuildReport(ReportMeta{Tool: "moc_check"}, nil, diag.Summary{Lines: 4})
	if !rep.Clean || rep.Diagnostics == nil {
		t.Fatalf("clean report = %+v", rep)
	}
	var buf bytes.Buffer
	if err := WriteReport(&buf, rep, FormatJSON); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"diagnostics": []`) {
		t.Fatalf("clean JSON must carry an empty list: %s", buf.String())
	}
}

func TestReportRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatMsgpack} {
		t.Run(format.String(), func(t *testing.T) {
			want := sampleReport()
			var buf bytes.Buffer
			if err := WriteReport(&buf, want, format); err != nil {
				t.Fatalf("WriteReport: %v", err)
			}
			got, err := ReadReport(&buf, format)
			if err != nil {
				t.Fatalf("ReadReport: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("round trip mismatch:\nwant %+v\n got %+v", want, got)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "json", want: FormatJSON},
		{in: "JSON", want: FormatJSON},
		{in: "msgpack", want: FormatMsgpack},
		{in: "mp", want: FormatMsgpack},
		{in: "sarif", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseFormat(%q) err = %v", tt.in, err)
		}
		if err == nil && got != tt.want {
			t.Fatalf("ParseFormat(%q) = %v", tt.in, got)
		}
	}
}
