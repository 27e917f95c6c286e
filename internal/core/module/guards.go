// Package module contains the pure business logic for module generation.
// This is part of the Functional Core - no I/O, only pure functions.
package module

import (
	"errors"
	"fmt"
	"strings"
)

// ErrModuleExists is returned when a module was generated before and the run
// was not forced.
var ErrModuleExists = errors.New("module already exists")

// GuardContext provides context for generation guards.
// Populated by the caller with pre-fetched artifact state.
type GuardContext struct {
	Module          string
	Table           string
	TableExists     bool
	MigrationExists bool
	HandlerExists   bool
	RouteRegistered bool
	Force           bool
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed   bool
	Reason    string   // Human-readable reason (populated when not allowed)
	Conflicts []string // Every pre-existing artifact, even when allowed
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrModuleExists, r.Reason)
}

// Conflicts lists the artifacts of a module that already exist.
func (ctx GuardContext) Conflicts() []string {
	var conflicts []string
	if ctx.TableExists {
		conflicts = append(conflicts, fmt.Sprintf("table %s exists", ctx.Table))
	}
	if ctx.MigrationExists {
		conflicts = append(conflicts, fmt.Sprintf("migration for %s exists", ctx.Table))
	}
	if ctx.HandlerExists {
		conflicts = append(conflicts, "handler file exists")
	}
	if ctx.RouteRegistered {
		conflicts = append(conflicts, "route is registered")
	}
	return conflicts
}

// CanGenerate evaluates whether a module may be generated.
// Rule: a module with any pre-existing artifact requires --force.
func CanGenerate(ctx GuardContext) GuardResult {
	conflicts := ctx.Conflicts()
	if len(conflicts) > 0 && !ctx.Force {
		return GuardResult{
			Allowed:   false,
			Reason:    fmt.Sprintf("%s (%s). Use --force to regenerate", ctx.Module, strings.Join(conflicts, ", ")),
			Conflicts: conflicts,
		}
	}
	return GuardResult{Allowed: true, Conflicts: conflicts}
}
