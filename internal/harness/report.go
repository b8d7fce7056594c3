package harness

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/numx/foundation/utils/numx"
)

// Report colors
var (
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

type reportStyles struct {
	header lipgloss.Style
	pass   lipgloss.Style
	fail   lipgloss.Style
	muted  lipgloss.Style
}

// newReportStyles binds styles to w so color is only emitted when w is a
// terminal that supports it
func newReportStyles(w io.Writer, color bool) reportStyles {
	if !color {
		plain := lipgloss.NewStyle()
		return reportStyles{header: plain, pass: plain, fail: plain, muted: plain}
	}

	r := lipgloss.NewRenderer(w)
	return reportStyles{
		header: r.NewStyle().Bold(true),
		pass:   r.NewStyle().Foreground(ColorSuccess).Bold(true),
		fail:   r.NewStyle().Foreground(ColorError).Bold(true),
		muted:  r.NewStyle().Foreground(ColorMuted),
	}
}

// WriteText renders one line per case and a summary line
func (r *Report) WriteText(w io.Writer, color bool) error {
	st := newReportStyles(w, color)

	if _, err := fmt.Fprintf(w, "%s %s\n", st.header.Render("suite "+r.Suite), st.muted.Render("(run "+r.RunID+")")); err != nil {
		return err
	}

	for _, res := range r.Results {
		status := st.pass.Render("PASS")
		line := fmt.Sprintf("%s = %v", res.Expression(), numx.Number(res.Got))
		if res.Err != nil {
			line = fmt.Sprintf("%s -> %v", res.Expression(), res.Err)
		}
		if !res.Passed() {
			status = st.fail.Render("FAIL")
			line = res.Failure.Error()
		}
		if _, err := fmt.Fprintf(w, "  %s  %-40s %s\n", status, res.Case.Name, st.muted.Render(line)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%d passed, %d failed\n", r.Passed, r.Failed)
	return err
}

type jsonResult struct {
	Name    string `json:"name"`
	Op      string `json:"op"`
	Input   string `json:"input"`
	Arg     string `json:"arg,omitempty"`
	Got     string `json:"got"`
	Calls   int    `json:"calls,omitempty"`
	Error   string `json:"error,omitempty"`
	Passed  bool   `json:"passed"`
	Failure string `json:"failure,omitempty"`
}

type jsonReport struct {
	RunID   string       `json:"run_id"`
	Suite   string       `json:"suite"`
	Passed  int          `json:"passed"`
	Failed  int          `json:"failed"`
	Results []jsonResult `json:"results"`
}

// WriteJSON renders the report as indented JSON. Results are rendered with
// their numbers as strings so NaN and infinities survive encoding.
func (r *Report) WriteJSON(w io.Writer) error {
	out := jsonReport{
		RunID:   r.RunID,
		Suite:   r.Suite,
		Passed:  r.Passed,
		Failed:  r.Failed,
		Results: make([]jsonResult, 0, len(r.Results)),
	}

	for _, res := range r.Results {
		jr := jsonResult{
			Name:   res.Case.Name,
			Op:     res.Case.Op,
			Input:  numx.Number(res.Case.Input).String(),
			Got:    numx.Number(res.Got).String(),
			Calls:  res.Calls,
			Passed: res.Passed(),
		}
		if op, err := Lookup(res.Case.Op); err == nil && op.Arity == 2 {
			jr.Arg = numx.Number(res.Case.Arg).String()
		}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		if res.Failure != nil {
			jr.Failure = res.Failure.Error()
		}
		out.Results = append(out.Results, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
