// Package models defines the marketplace domain records and their JSON views.
//
// Records map one-to-one onto database tables; relationships are plain
// foreign-key fields. Views list the serialized fields explicitly.
package models

// All returns every record type, in dependency order, for schema migration.
func All() []interface{} {
	return []interface{}{&User{}, &Storefront{}, &Product{}, &Review{}}
}
