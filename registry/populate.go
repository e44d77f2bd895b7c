package registry

import (
	"errors"
	"fmt"
	"time"

	"github.com/gregoryfmartin/zipassets/archive"
	"github.com/gregoryfmartin/zipassets/metrics"
)

// Source enumerates and reads archive entries. *archive.Reader implements it.
type Source interface {
	Entries() ([]archive.Entry, error)
	ReadEntry(e archive.Entry) ([]byte, error)
}

// DecodeFunc turns an entry payload into a handle.
//
// data is only valid for the duration of the call; a decoder that keeps it
// must copy it.
type DecodeFunc[T any] func(data []byte) (T, error)

// Report summarises a Populate run.
type Report struct {
	// Added lists inserted names in insertion order.
	Added []string

	// Duplicates lists matching names that were already present.
	Duplicates []string

	// Filtered is the number of entries the predicate rejected.
	Filtered int

	// Diagnostics holds one *EntryError per entry that failed to read or decode.
	Diagnostics []error
}

// Err joins the diagnostics, or returns nil when there are none.
func (r *Report) Err() error {
	if r == nil {
		return nil
	}
	return errors.Join(r.Diagnostics...)
}

// Populate inserts a handle for every entry of src whose name matches.
//
// Entries are visited in archive order. An entry that fails to read or
// decode is recorded in the report and skipped; it never aborts the run.
// The returned error is non-nil only when the entries cannot be enumerated,
// when src has been closed, or when the registry has been destroyed. Handles
// inserted before such an abort stay in the registry.
func (r *Registry[T]) Populate(src Source, match Predicate, decode DecodeFunc[T]) (*Report, error) {
	if r.destroyed {
		return nil, ErrDestroyed
	}
	if match == nil {
		match = MatchAll
	}

	start := time.Now()
	defer func() {
		metrics.PopulateDuration.WithLabelValues(r.name).Observe(time.Since(start).Seconds())
	}()

	entries, err := src.Entries()
	if err != nil {
		return nil, fmt.Errorf("enumerate entries: %w", err)
	}

	report := &Report{}
	for _, e := range entries {
		if !match(e.Name) {
			report.Filtered++
			r.observe(metrics.OutcomeFiltered)
			continue
		}

		data, err := src.ReadEntry(e)
		if err != nil {
			if errors.Is(err, archive.ErrClosed) {
				return report, err
			}
			r.diagnose(report, &EntryError{Name: e.Name, Op: OpRead, Err: err})
			r.observe(metrics.OutcomeReadError)
			continue
		}

		handle, err := decode(data)
		if err != nil {
			r.diagnose(report, &EntryError{Name: e.Name, Op: OpDecode, Err: fmt.Errorf("%w: %w", ErrDecode, err)})
			r.observe(metrics.OutcomeDecodeErr)
			continue
		}

		if _, err := r.Insert(e.Name, handle); err != nil {
			if errors.Is(err, ErrDuplicateName) {
				report.Duplicates = append(report.Duplicates, e.Name)
				r.observe(metrics.OutcomeDuplicate)
				r.log().Debug("duplicate entry skipped", "registry", r.name, "name", e.Name)
				continue
			}
			return report, err
		}
		report.Added = append(report.Added, e.Name)
		r.observe(metrics.OutcomeAdded)
	}

	r.log().Debug("registry populated",
		"registry", r.name,
		"added", len(report.Added),
		"duplicates", len(report.Duplicates),
		"filtered", report.Filtered,
		"failed", len(report.Diagnostics),
		"elapsed", time.Since(start))
	return report, nil
}

func (r *Registry[T]) diagnose(report *Report, err *EntryError) {
	report.Diagnostics = append(report.Diagnostics, err)
	r.log().Warn("skipping entry", "registry", r.name, "name", err.Name, "op", err.Op, "error", err.Err)
}

func (r *Registry[T]) observe(outcome string) {
	metrics.PopulateEntries.WithLabelValues(r.name, outcome).Inc()
}
