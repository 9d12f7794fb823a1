// Package doctor runs environment diagnostics.
package doctor

import (
	"bytes"
	"context"
	"fmt"

	"nous/internal/domain"
	"nous/internal/ports"
	"nous/internal/state"
)

// probeCollection is a throwaway key used to verify the store round-trips.
const probeCollection = "doctor_probe"

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Store          ports.BlobStore
	State          *state.State
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded, format %s", cfg.ConfigFormatVersion)))
	checks = append(checks, configCheck(cfg))
	checks = append(checks, s.storageCheck())
	checks = append(checks, s.dictionaryCheck())

	return domain.HealthReport{Checks: checks}, nil
}

func configCheck(cfg domain.Config) domain.HealthCheck {
	switch cfg.Storage.Backend {
	case "", domain.StorageBackendSQLite, domain.StorageBackendFile:
	default:
		return warn("Config values", fmt.Sprintf("unknown storage backend %q", cfg.Storage.Backend))
	}
	if cfg.Brain.IntervalMinutes < 0 {
		return warn("Config values", "brain interval must be positive")
	}
	return ok("Config values", fmt.Sprintf("brain every %s", cfg.Brain.Interval()))
}

func (s *Service) storageCheck() domain.HealthCheck {
	if s.Store == nil {
		return fail("Storage", "store not initialized")
	}
	probe := []byte(`{"probe":true}`)
	if err := s.Store.Save(probeCollection, probe); err != nil {
		return warn("Storage", fmt.Sprintf("write failed: %v", err))
	}
	payload, found := s.Store.Load(probeCollection)
	if !found || !bytes.Equal(payload, probe) {
		return warn("Storage", "probe did not round-trip")
	}
	return ok("Storage", "read/write verified")
}

func (s *Service) dictionaryCheck() domain.HealthCheck {
	if s.State == nil {
		return fail("Dictionary", "state not initialized")
	}
	dict := s.State.Dictionary()
	if dict.IsEmpty() {
		return warn("Dictionary", "no entries; expansion and enhancement are inert")
	}
	return ok("Dictionary", fmt.Sprintf("%d synonyms, %d antonyms, %d stopwords, %d rewrites",
		len(dict.Synonyms), len(dict.Antonyms), len(dict.Stopwords), len(dict.Rewrites)))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
