// Package container provides dependency injection for the application. It
// centralizes the creation and wiring of components so every dependency is
// explicit and the container is immutable after construction.
package container

import (
	"fmt"

	"dmaia/sped-consolidate/internal/config"
	"dmaia/sped-consolidate/internal/consolidator"
	"dmaia/sped-consolidate/internal/layout"
	"dmaia/sped-consolidate/internal/logging"
	"dmaia/sped-consolidate/internal/models"
	"dmaia/sped-consolidate/internal/report"
	"dmaia/sped-consolidate/internal/spedparser"
)

// Container holds the wired application components. All fields are private;
// access goes through getters so nothing can be swapped after initialization.
type Container struct {
	logger       logging.Logger
	config       *config.Config
	registry     *layout.Registry
	parser       *spedparser.Parser
	consolidator *consolidator.Consolidator
	reports      *report.Generator
}

// NewContainer wires all application dependencies. The transition schedule is
// an external collaborator handed in by the caller; nil disables the
// transition adjustment.
func NewContainer(cfg *config.Config, schedule models.ScheduleFunc) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	registry := layout.NewRegistry()
	if cfg.Parser.LayoutOverridesFile != "" {
		var err error
		registry, err = layout.NewRegistryFromFile(cfg.Parser.LayoutOverridesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load layout overrides: %w", err)
		}
		logger.Info("Loaded layout overrides",
			logging.Field{Key: logging.FieldFile, Value: cfg.Parser.LayoutOverridesFile})
	}
	if err := registry.Validate(); err != nil {
		return nil, err
	}

	return &Container{
		logger:       logger,
		config:       cfg,
		registry:     registry,
		parser:       spedparser.New(registry, logger),
		consolidator: consolidator.New(registry, schedule, logger),
		reports:      report.NewGenerator(logger),
	}, nil
}

// Logger returns the container's logger.
func (c *Container) Logger() logging.Logger { return c.logger }

// Config returns the loaded configuration.
func (c *Container) Config() *config.Config { return c.config }

// Registry returns the validated layout registry.
func (c *Container) Registry() *layout.Registry { return c.registry }

// Parser returns the record parser.
func (c *Container) Parser() *spedparser.Parser { return c.parser }

// Consolidator returns the consolidation orchestrator.
func (c *Container) Consolidator() *consolidator.Consolidator { return c.consolidator }

// Reports returns the report generator.
func (c *Container) Reports() *report.Generator { return c.reports }
