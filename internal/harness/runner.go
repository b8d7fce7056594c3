package harness

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/numx/foundation/core/error"
	mdwlog "github.com/msto63/numx/foundation/core/log"
	"github.com/msto63/numx/foundation/utils/numx"
)

// Result is the outcome of one case
type Result struct {
	Case    Case
	Got     float64
	Calls   int
	Err     error
	Failure error
}

// Passed reports whether the case met its expectation
func (r Result) Passed() bool {
	return r.Failure == nil
}

// Report summarizes one run of a suite
type Report struct {
	RunID   string
	Suite   string
	Results []Result
	Passed  int
	Failed  int
}

// OK reports whether every case passed
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Runner executes suites case by case on the calling goroutine
type Runner struct {
	logger *mdwlog.Logger
}

// NewRunner creates a runner that logs through logger; nil discards logs
func NewRunner(logger *mdwlog.Logger) *Runner {
	if logger == nil {
		logger = mdwlog.Discard()
	}
	return &Runner{logger: logger.WithName("harness")}
}

// Run executes every case of suite in order. It stops early only when ctx
// is done, returning the partial report together with ctx.Err().
func (r *Runner) Run(ctx context.Context, suite *Suite) (*Report, error) {
	report := &Report{
		RunID: uuid.New().String(),
		Suite: suite.Name,
	}
	logger := r.logger.WithRequestID(report.RunID).WithField("suite", suite.Name)
	logger.Info("run started", mdwlog.Int("cases", len(suite.Cases)))

	for _, c := range suite.Cases {
		if err := ctx.Err(); err != nil {
			logger.WarnWithErr("run aborted", err)
			return report, err
		}

		result := evaluate(c)
		report.Results = append(report.Results, result)

		if result.Passed() {
			report.Passed++
			logger.Debug("case passed", mdwlog.String("case", c.Name), mdwlog.Float64("got", result.Got))
			continue
		}
		report.Failed++
		logger.LogError(result.Failure)
	}

	logger.Info("run finished", mdwlog.Int("passed", report.Passed), mdwlog.Int("failed", report.Failed))
	return report, nil
}

func evaluate(c Case) Result {
	result := Result{Case: c}

	op, err := Lookup(c.Op)
	if err != nil {
		result.Failure = err
		return result
	}

	result.Got, result.Calls, result.Err = op.Apply(c.Input, c.Arg)
	description := c.Description
	if description == "" {
		description = c.Name
	}

	if c.WantErr != "" {
		if !mdwerror.HasCode(result.Err, mdwerror.Code(c.WantErr)) {
			result.Failure = mdwerror.New(fmt.Sprintf("%s: got error %v, want code %s", description, result.Err, c.WantErr)).
				WithCode(mdwerror.CodeAssertionFailed).
				WithOperation("equals").
				WithDetail("case", c.Name)
		}
	} else if result.Err != nil {
		result.Failure = mdwerror.Wrap(result.Err, description).
			WithCode(mdwerror.CodeAssertionFailed).
			WithSeverity(mdwerror.SeverityMedium)
	} else if c.Want != nil {
		result.Failure = Equals(result.Got, *c.Want, description)
	}

	if result.Failure == nil && c.WantCalls != nil {
		result.Failure = Equals(float64(result.Calls), float64(*c.WantCalls), description+" (callback invocations)")
	}
	return result
}

// Expression renders the call a result came from, e.g. "mod(-3, 8)"
func (r Result) Expression() string {
	op, err := Lookup(r.Case.Op)
	if err == nil && op.Arity == 2 {
		return fmt.Sprintf("%s(%v, %v)", r.Case.Op, numx.Number(r.Case.Input), numx.Number(r.Case.Arg))
	}
	return fmt.Sprintf("%s(%v)", r.Case.Op, numx.Number(r.Case.Input))
}
