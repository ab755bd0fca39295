// Package domain holds the bastion campaign entities and their state
// transitions. The package is persistence-agnostic: all storage flows
// through the Store interface and all clock or identity concerns are
// injected by callers.
package domain
