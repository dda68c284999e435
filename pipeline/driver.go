// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
)

// Options configures a Run.
type Options struct {
	// ContinueOnError collects per-folder failures into the report
	// instead of aborting the whole run on the first one.
	ContinueOnError bool

	// Status receives progress lines; nil discards them.
	Status Status

	// Progress, if set, is called after each folder completes with the
	// number of folders done and the total.
	Progress func(done, total int)
}

// FolderOutcome is the per-folder record in a run report.
type FolderOutcome struct {
	Folder string
	Result *Result
	Err    error
}

// Report collects the outcome of a whole run.
type Report struct {
	Outcomes []FolderOutcome
}

// Errs returns the per-folder errors, in processing order.
func (r *Report) Errs() []error {
	var errs []error

	for _, o := range r.Outcomes {
		if o.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", o.Folder, o.Err))
		}
	}

	return errs
}

// VerificationFailures returns the output folders whose re-measured
// loudness fell outside the tolerance.
func (r *Report) VerificationFailures() []string {
	var failed []string

	for _, o := range r.Outcomes {
		if o.Result != nil && !o.Result.Skipped && o.Result.Verification == VerdictFail {
			failed = append(failed, o.Result.OutputFolder)
		}
	}

	return failed
}

// Run iterates the immediate subfolders of inputRoot as independent
// stem sets, processing and then verifying each one in order. Folders
// are strictly sequential: folder N+1 never starts before folder N has
// been processed and verified.
//
// A verification failure is a warning, not an abort. A processing
// error aborts the whole run unless Options.ContinueOnError is set, in
// which case it is recorded and the run moves on. The returned report
// covers every folder reached either way.
func Run(inputRoot, outputRoot string, target float64, opts Options) (*Report, error) {
	status := ensureStatus(opts.Status)

	entries, err := os.ReadDir(inputRoot)
	if err != nil {
		return nil, fmt.Errorf("reading input folder: %w", err)
	}

	var folders []string
	for _, entry := range entries {
		if entry.IsDir() {
			folders = append(folders, filepath.Join(inputRoot, entry.Name()))
		}
	}

	report := &Report{}

	for i, folder := range folders {
		status("Processing folder: %s", folder)

		outcome := FolderOutcome{Folder: folder}
		outcome.Result, outcome.Err = Process(folder, outputRoot, target, status)

		if outcome.Err == nil && !outcome.Result.Skipped {
			verdict, verr := Verify(outcome.Result.OutputFolder, target, status)
			outcome.Result.Verification = verdict
			outcome.Err = verr

			switch verdict {
			case VerdictPass:
				status("Loudness verification passed for %s", outcome.Result.OutputFolder)
			case VerdictFail:
				status("Loudness verification failed for %s", outcome.Result.OutputFolder)
			}
		}

		report.Outcomes = append(report.Outcomes, outcome)

		if outcome.Err != nil && !opts.ContinueOnError {
			return report, outcome.Err
		}

		if opts.Progress != nil {
			opts.Progress(i+1, len(folders))
		}
	}

	return report, nil
}
