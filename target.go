package globaltables

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ReplicationTarget is one self-contained replication pass. The deploy-region
// global-table pass and the legacy fixed-list upgrade pass are both targets,
// run by the orchestrator in turn.
type ReplicationTarget interface {
	// Name identifies the pass in log output
	Name() string

	// Replicate brings every table covered by this target up to date,
	// stopping at the first unexpected control-plane error
	Replicate(ctx context.Context) error
}

// RegionTarget promotes each deployed table to a Global Table and ensures the
// deploy region is one of its replicas.
type RegionTarget struct {
	session *DynaSession
	hooks   *CallHooks
	logger  zerolog.Logger

	tables        []string
	region        string
	masterRegion  string
	targetVersion string
}

// Name implements ReplicationTarget
func (t *RegionTarget) Name() string { return "global-table" }

// Replicate creates the global tables and then adds the deploy region as a
// replica. Each phase fans out across tables and waits for all of them, the
// requests are independent so no ordering between tables is needed.
func (t *RegionTarget) Replicate(ctx context.Context) error {
	pending := make([]string, 0, len(t.tables))

	for _, table := range t.tables {
		if tableAtTargetVersion(ctx, t.session.Client(t.masterRegion), t.hooks, t.logger, table, t.targetVersion) {
			continue
		}

		pending = append(pending, table)
	}

	err := t.fanOut(ctx, pending, t.createGlobalTable)
	if err != nil {
		return err
	}

	return t.fanOut(ctx, pending, t.addReplica)
}

func (t *RegionTarget) fanOut(ctx context.Context, tables []string, op func(ctx context.Context, table string) error) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, table := range tables {
		table := table

		g.Go(func() error {
			return op(ctx, table)
		})
	}

	return g.Wait()
}

// createGlobalTable requests a global table with the deploy region as its
// sole initial replica. An existing global table is a successful no-op, any
// other failure is returned to the caller unchanged.
func (t *RegionTarget) createGlobalTable(ctx context.Context, table string) error {
	ctx = setOperationName(ctx, "CreateGlobalTable")

	req := &dynamodb.CreateGlobalTableInput{
		GlobalTableName: aws.String(table),
		ReplicationGroup: []*dynamodb.Replica{
			{RegionName: aws.String(t.region)},
		},
	}

	ctx = t.hooks.RequestBuilt(ctx, req)

	_, err := t.session.Client(t.region).CreateGlobalTableWithContext(ctx, req)
	if err != nil {
		if isGlobalTableExists(err) {
			t.logger.Info().Str("table", table).Msg("global table already exists")
			return nil
		}

		return err
	}

	t.logger.Info().Str("table", table).Str("region", t.region).Msg("created global table")

	return nil
}

// addReplica requests the deploy region as a replica of the global table. An
// existing replica is a successful no-op.
func (t *RegionTarget) addReplica(ctx context.Context, table string) error {
	ctx = setOperationName(ctx, "UpdateGlobalTable")

	req := &dynamodb.UpdateGlobalTableInput{
		GlobalTableName: aws.String(table),
		ReplicaUpdates: []*dynamodb.ReplicaUpdate{
			{Create: &dynamodb.CreateReplicaAction{RegionName: aws.String(t.region)}},
		},
	}

	ctx = t.hooks.RequestBuilt(ctx, req)

	_, err := t.session.Client(t.region).UpdateGlobalTableWithContext(ctx, req)
	if err != nil {
		if isReplicaExists(err) {
			t.logger.Info().Str("table", table).Str("region", t.region).Msg("replica already exists")
			return nil
		}

		return err
	}

	t.logger.Info().Str("table", table).Str("region", t.region).Msg("added replica")

	return nil
}

// LegacyTarget upgrades a fixed set of tables which pre-date the global-table
// version mechanism, adding replicas through the per-table update API.
type LegacyTarget struct {
	session *DynaSession
	hooks   *CallHooks
	logger  zerolog.Logger

	tables        []string
	regions       []string
	masterRegion  string
	targetVersion string
}

// Name implements ReplicationTarget
func (t *LegacyTarget) Name() string { return "legacy-upgrade" }

// Replicate upgrades each legacy table, fanning out across tables.
func (t *LegacyTarget) Replicate(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, table := range t.tables {
		table := table

		g.Go(func() error {
			return t.upgradeTable(ctx, table)
		})
	}

	return g.Wait()
}

// upgradeTable adds the configured replica regions one request at a time, the
// service rejects concurrent modification of the same global table.
func (t *LegacyTarget) upgradeTable(ctx context.Context, table string) error {
	if tableAtTargetVersion(ctx, t.session.Client(t.masterRegion), t.hooks, t.logger, table, t.targetVersion) {
		return nil
	}

	for _, region := range t.regions {
		if region == t.masterRegion {
			continue
		}

		err := t.addReplica(ctx, table, region)
		if err != nil {
			return err
		}
	}

	return nil
}

// addReplica requests the region as a replica through the legacy UpdateTable
// API. A replica which already exists as a table is a successful no-op.
func (t *LegacyTarget) addReplica(ctx context.Context, table, region string) error {
	ctx = setOperationName(ctx, "UpdateTable")

	req := &dynamodb.UpdateTableInput{
		TableName: aws.String(table),
		ReplicaUpdates: []*dynamodb.ReplicationGroupUpdate{
			{Create: &dynamodb.CreateReplicationGroupMemberAction{RegionName: aws.String(region)}},
		},
	}

	ctx = t.hooks.RequestBuilt(ctx, req)

	_, err := t.session.Client(t.masterRegion).UpdateTableWithContext(ctx, req)
	if err != nil {
		if isLegacyReplicaExists(err) {
			t.logger.Info().Str("table", table).Str("region", region).Msg("replica already exists as table")
			return nil
		}

		return err
	}

	t.logger.Info().Str("table", table).Str("region", region).Msg("added replica via table update")

	return nil
}
