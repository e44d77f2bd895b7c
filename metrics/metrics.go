// Package metrics holds the Prometheus collectors shared by the archive and
// registry packages.
//
// Collectors are always live; Register attaches them to a registry so they
// can be exposed or written out with WriteTextfile.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	NameSpace = "zipassets"

	// ArchiveBytesRead counts decompressed bytes read from archive entries
	ArchiveBytesRead = prometheus.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, "archive", "read_bytes_total"),
		Help: "Decompressed bytes read from archive entries",
	})

	// PopulateEntries counts archive entries seen while populating a registry, by outcome
	PopulateEntries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, "registry", "populate_entries_total"),
		Help: "Archive entries processed while populating a registry",
	}, []string{"registry", "outcome"})

	// PopulateDuration is a summary of the time taken to populate a registry
	PopulateDuration = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name: prometheus.BuildFQName(NameSpace, "registry", "populate_duration_seconds"),
		Help: "Time taken to populate a registry from an archive",
	}, []string{"registry"})

	// RegistrySize is the number of live entries in a registry
	RegistrySize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(NameSpace, "registry", "entries"),
		Help: "Number of live entries in a registry",
	}, []string{"registry"})

	// Disposed counts handles released by a registry
	Disposed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, "registry", "disposed_total"),
		Help: "Handles released by a registry",
	}, []string{"registry"})
)

// Populate outcomes.
const (
	OutcomeAdded     = "added"
	OutcomeDuplicate = "duplicate"
	OutcomeFiltered  = "filtered"
	OutcomeReadError = "read_error"
	OutcomeDecodeErr = "decode_error"
)

func collectors() []prometheus.Collector {
	return []prometheus.Collector{ArchiveBytesRead, PopulateEntries, PopulateDuration, RegistrySize, Disposed}
}

// Register registers every collector with reg, ignoring collectors that are
// already registered there.
func Register(reg prometheus.Registerer) error {
	for _, c := range collectors() {
		err := reg.Register(c)
		if err == nil {
			continue
		}
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			continue
		}
		return err
	}
	return nil
}

// WriteTextfile registers the collectors with a fresh registry and writes
// them to path in the text exposition format.
func WriteTextfile(path string) error {
	reg := prometheus.NewRegistry()
	if err := Register(reg); err != nil {
		return err
	}
	return prometheus.WriteToTextfile(path, reg)
}
