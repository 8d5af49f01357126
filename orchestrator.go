package globaltables

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Orchestrator drives the replication passes for one deployment.
type Orchestrator struct {
	descriptor *Descriptor
	opts       *Options
}

// NewOrchestrator construct an orchestrator for the given deployment descriptor
func NewOrchestrator(descriptor *Descriptor, opts ...Option) *Orchestrator {
	return &Orchestrator{
		descriptor: descriptor,
		opts:       NewOptions(opts...),
	}
}

// Run executes every replication pass for the deployment. The run stops at
// the first unexpected control-plane error, which is returned to the caller
// unchanged, benign "already exists" conflicts are treated as completed work.
func (o *Orchestrator) Run(ctx context.Context) error {
	runID, err := newRunID()
	if err != nil {
		return err
	}

	logger := o.opts.logger.With().
		Str("run_id", runID).
		Str("service", o.descriptor.Service).
		Logger()

	if !o.descriptor.Custom.GlobalTables.IsEnabled() {
		logger.Info().Msg("global table replication disabled, skipping")
		return nil
	}

	targets, err := o.targets(logger)
	if err != nil {
		return err
	}

	for _, target := range targets {
		logger.Info().Str("target", target.Name()).Msg("replicating")

		err = target.Replicate(ctx)
		if err != nil {
			return err
		}
	}

	return nil
}

// targets assembles the replication passes for this deploy. Deploys in the
// excluded region skip the global-table pass, those tables are covered by the
// legacy upgrade list.
func (o *Orchestrator) targets(logger zerolog.Logger) ([]ReplicationTarget, error) {
	region := o.descriptor.Provider.Region
	if region == "" {
		return nil, ErrNoRegion
	}

	var targets []ReplicationTarget

	if region == o.opts.excludedRegion {
		logger.Info().Str("region", region).Msg("deploy region excluded from global-table pass")
	} else {
		tables, err := o.descriptor.TableNames()
		if err != nil {
			return nil, fmt.Errorf("failed to enumerate tables: %w", err)
		}

		targets = append(targets, &RegionTarget{
			session:       o.opts.session,
			hooks:         o.opts.hooks,
			logger:        logger,
			tables:        tables,
			region:        region,
			masterRegion:  o.opts.masterRegion,
			targetVersion: o.opts.targetVersion,
		})
	}

	if len(o.opts.legacyTables) != 0 {
		targets = append(targets, &LegacyTarget{
			session:       o.opts.session,
			hooks:         o.opts.hooks,
			logger:        logger,
			tables:        o.opts.legacyTables,
			regions:       o.opts.legacyRegions,
			masterRegion:  o.opts.masterRegion,
			targetVersion: o.opts.targetVersion,
		})
	}

	return targets, nil
}
