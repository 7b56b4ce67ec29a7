// Package mongo provides MongoDB connection management for the service.
//
// Configuration is entirely environment-driven to simplify deployment across
// development, staging, and production. Connection failures during startup
// are retried a configurable number of times before giving up, which handles
// transient unavailability when the database container comes up alongside
// the service.
//
// Usage:
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	client, db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Disconnect(context.Background())
//
// Healthcheck(client) yields a func suitable for readiness probes.
package mongo
