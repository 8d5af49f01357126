package globaltables

import "github.com/rs/zerolog"

const (
	// DefaultTargetVersion the global-table version tables are migrated to
	DefaultTargetVersion = "2019.11.21"

	// DefaultMasterRegion the region used for authoritative version reads
	DefaultMasterRegion = "eu-west-2"

	// DefaultExcludedRegion deploys in this region skip the global-table
	// pass; its tables are covered by the legacy upgrade list instead
	DefaultExcludedRegion = "ca-central-1"
)

// DefaultLegacyTables tables which pre-date the global-table version
// mechanism and are upgraded through the per-table update API
var DefaultLegacyTables = []string{"deploy-locks", "service-catalog"}

// DefaultLegacyRegions the replica set maintained for the legacy tables
var DefaultLegacyRegions = []string{"eu-west-2", "eu-central-1", "ca-central-1"}

// Option assign various settings to the orchestrator options
type Option func(opts *Options)

// Options contains optional orchestrator parameters
type Options struct {
	logger         zerolog.Logger
	session        *DynaSession
	hooks          *CallHooks
	masterRegion   string
	excludedRegion string
	targetVersion  string
	legacyTables   []string
	legacyRegions  []string
}

// NewOptions create orchestrator options, assign defaults then accept overrides
func NewOptions(opts ...Option) *Options {
	orcOpts := &Options{
		logger:         zerolog.Nop(),
		hooks:          defaultHooks,
		masterRegion:   DefaultMasterRegion,
		excludedRegion: DefaultExcludedRegion,
		targetVersion:  DefaultTargetVersion,
		legacyTables:   DefaultLegacyTables,
		legacyRegions:  DefaultLegacyRegions,
	}

	for _, opt := range opts {
		opt(orcOpts)
	}

	if orcOpts.session == nil {
		orcOpts.session = New()
	}

	return orcOpts
}

// WithLogger logger used for decision and outcome lines
func WithLogger(logger zerolog.Logger) Option {
	return func(opts *Options) {
		opts.logger = logger
	}
}

// WithSession session used to reach the DynamoDB control plane
func WithSession(session *DynaSession) Option {
	return func(opts *Options) {
		opts.session = session
	}
}

// WithHooks callbacks observing each control-plane request
func WithHooks(hooks *CallHooks) Option {
	return func(opts *Options) {
		opts.hooks = hooks
	}
}

// WithMasterRegion region used for authoritative version reads
func WithMasterRegion(region string) Option {
	return func(opts *Options) {
		opts.masterRegion = region
	}
}

// WithExcludedRegion region whose deploys skip the global-table pass
func WithExcludedRegion(region string) Option {
	return func(opts *Options) {
		opts.excludedRegion = region
	}
}

// WithTargetVersion global-table version used as the migration gate
func WithTargetVersion(version string) Option {
	return func(opts *Options) {
		opts.targetVersion = version
	}
}

// WithLegacyTables tables upgraded through the per-table update API, an
// empty list disables the legacy pass
func WithLegacyTables(tables ...string) Option {
	return func(opts *Options) {
		opts.legacyTables = tables
	}
}

// WithLegacyRegions replica regions maintained for the legacy tables
func WithLegacyRegions(regions ...string) Option {
	return func(opts *Options) {
		opts.legacyRegions = regions
	}
}
