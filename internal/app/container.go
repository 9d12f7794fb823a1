// Package app wires application services with infrastructure adapters.
package app

import (
	"context"

	"gopkg.in/yaml.v3"

	"nous/assets"
	"nous/internal/application/brain"
	"nous/internal/application/doctor"
	"nous/internal/application/interpret"
	"nous/internal/domain"
	"nous/internal/infrastructure/cache"
	"nous/internal/infrastructure/config"
	"nous/internal/infrastructure/store"
	"nous/internal/pkg/logger"
	"nous/internal/ports"
	"nous/internal/state"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config           domain.Config
	ConfigProvider   ports.ConfigProvider
	ConfigLoader     *config.FileLoader
	Store            ports.BlobStore
	State            *state.State
	InterpretService *interpret.Service
	BrainService     *brain.Service
	Scheduler        *brain.Scheduler
	DoctorService    *doctor.Service
	Logger           ports.Logger
}

// BuildContainer constructs the dependency graph. The scheduler is wired
// but not started; long-running commands start it explicitly.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.New(verbose || cfg.Preferences.Verbose)

	var blobStore ports.BlobStore
	switch cfg.Storage.Backend {
	case domain.StorageBackendFile:
		blobStore = store.NewFileStore(cfg.Storage.Path)
	default:
		blobStore = store.NewSQLiteStore(cfg.Storage.Path)
	}

	st := state.New(blobStore, defaultState(log), log)

	interpretService := &interpret.Service{
		State:  st,
		Cache:  cache.NewFileCache(),
		Logger: log,
	}
	brainService := &brain.Service{State: st, Logger: log}
	scheduler := brain.NewScheduler(brainService, cfg.Brain.Interval())
	st.SetOnChange(scheduler.Rearm)

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		Store:          blobStore,
		State:          st,
	}

	return &Container{
		Config:           cfg,
		ConfigProvider:   cfgLoader,
		ConfigLoader:     cfgLoader,
		Store:            blobStore,
		State:            st,
		InterpretService: interpretService,
		BrainService:     brainService,
		Scheduler:        scheduler,
		DoctorService:    doctorService,
		Logger:           log,
	}, nil
}

// defaultState parses the embedded defaults. A broken embedded asset is a
// build defect, but per the storage contract the fallback stays silent:
// the affected collection just starts empty.
func defaultState(log ports.Logger) state.Defaults {
	var defaults state.Defaults
	if err := yaml.Unmarshal(assets.DefaultDictionaryYAML, &defaults.Dictionary); err != nil {
		log.Warn("embedded dictionary unreadable", map[string]interface{}{"error": err.Error()})
	}
	if err := yaml.Unmarshal(assets.DefaultSnippetsYAML, &defaults.Snippets); err != nil {
		log.Warn("embedded snippets unreadable", map[string]interface{}{"error": err.Error()})
	}
	return defaults
}
