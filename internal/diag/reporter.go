package diag

// CharErrLimit is the number of illegal characters reported in detail for
// a single line.
const CharErrLimit = 5

// Summary is the end-of-run aggregate handed to ReportSummary.
type Summary struct {
	Lines   uint32 // lines read
	Illegal int    // illegal characters over the whole input
}

// Clean reports whether the input had no illegal character.
func (s Summary) Clean() bool { return s.Illegal == 0 }

// Reporter receives findings from the processing loops.
// Реализации: BagReporter (в Bag), MultiReporter (fan-out), NopReporter,
// diagfmt.TextReporter (stderr).
type Reporter interface {
	// BeginLine announces count illegal characters in line; text is the decoded line.
	BeginLine(line uint32, text string, count int)
	ReportIllegalChar(d Diagnostic)
	// ReportSuppressed is called once per line with more than CharErrLimit findings.
	ReportSuppressed(line uint32, count int)
	ReportSummary(s Summary)
}

// EmitLine applies the per-line reporting policy to the diagnostics of one line.
// Nothing is reported for a clean line.
func EmitLine(r Reporter, line uint32, text string, diags []Diagnostic) {
	if r == nil || len(diags) == 0 {
		return
	}
	r.BeginLine(line, text, len(diags))
	shown := min(len(diags), CharErrLimit)
	for i := range shown {
		r.ReportIllegalChar(diags[i])
	}
	if len(diags) > CharErrLimit {
		r.ReportSuppressed(line, len(diags)-CharErrLimit)
	}
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) BeginLine(uint32, string, int) {}
func (NopReporter) ReportIllegalChar(Diagnostic) {}
func (NopReporter) ReportSuppressed(uint32, int) {}
func (NopReporter) ReportSummary(Summary) {}

// MultiReporter forwards every call to each of its reporters, in order.
type MultiReporter []Reporter

func (m MultiReporter) BeginLine(line uint32, text string, count int) {
	for _, r := range m {
		r.BeginLine(line, text, count)
	}
}

func (m MultiReporter) ReportIllegalChar(d Diagnostic) {
	for _, r := range m {
		r.ReportIllegalChar(d)
	}
}

func (m MultiReporter) ReportSuppressed(line uint32, count int) {
	for _, r := range m {
		r.ReportSuppressed(line, count)
	}
}

func (m MultiReporter) ReportSummary(s Summary) {
	for _, r := range m {
		r.ReportSummary(s)
	}
}

// BagReporter: адаптер, который пишет в *Bag. Suppressed counts are kept
// as Suppressed diagnostics so a report mirrors the text output.
type BagReporter struct {
	Bag     *Bag
	Summary Summary
}

func (r *BagReporter) BeginLine(uint32, string, int) {}

func (r *BagReporter) ReportIllegalChar(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

func (r *BagReporter) ReportSuppressed(line uint32, count int) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Suppressed(line, count))
}

func (r *BagReporter) ReportSummary(s Summary) {
	r.Summary = s
}
