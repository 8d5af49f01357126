// Package globaltables promotes the DynamoDB tables created by a deployment
// to Global Tables and keeps their replica set in step with the deploy region.
//
// The orchestrator reads table resources from a deployment descriptor, then
// issues the control-plane calls needed to bring each table to the target
// global-table version: create the global table with the deploy region as its
// first replica, add the deploy region as a replica, and for tables which
// pre-date the global-table version mechanism, add replicas through the
// legacy per-table update API.
//
// Every step treats the "already exists" family of service errors as success,
// so a deploy can be re-run at any point without manual cleanup.
//
//	desc, err := globaltables.LoadDescriptor("serverless.yml")
//	if err != nil {
//	    log.Fatal().Err(err).Msg("failed to load descriptor")
//	}
//
//	orc := globaltables.NewOrchestrator(desc, globaltables.WithLogger(logger))
//
//	err = orc.Run(context.Background())
package globaltables
