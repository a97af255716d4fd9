// Package topicmgr derives the canonical WebSocket topic and command catalog.
//
// Every identifier the gateway understands is produced by three small factories
// from a static Catalog of domain entities and analytics scopes:
//
//	EntityTopics("restaurants")                    // restaurants.snapshot ... restaurants.deleted
//	EntityCommands("section_objects", "section_object") // command.list_section_objects, command.get_section_object
//	AnalyticsTopics(ScopeAdmin, "payments")        // analytics-admin-payments.snapshot, .error
//
// Build assembles the factory output into two immutable trees, one for topics and
// one for commands, and refuses to return a Registry when the catalog produces an
// empty name, an unknown scope or two identical leaves:
//
//	reg, err := topicmgr.Build(topicmgr.DefaultCatalog())
//	if err != nil {
//		log.Fatal(err)
//	}
//	reg.IsTopic("restaurants.list")         // true
//	reg.ResolveAction("list_restaurants")   // "command.list_restaurants", nil
//
// A Registry has no writers after Build returns, so it can be shared by any
// number of goroutines without locking.
package topicmgr
