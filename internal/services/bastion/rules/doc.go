// Package rules holds the static bastion rules tables: facility definitions,
// order catalogs, construction and enlargement costs, special-facility
// acquisition limits, and the bastion event table.
//
// The tables are immutable game data. All lookups are pure functions so the
// engines layered on top stay deterministic and trivially testable.
package rules
