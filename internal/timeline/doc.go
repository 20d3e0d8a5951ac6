// Package timeline holds the read-side algorithms over a tenant's event graph:
// connection validation, temporal consistency analysis and adjacency building.
//
// Every function here is pure. Inputs are never mutated and results depend only
// on the arguments, so callers may run them concurrently and repeatedly.
package timeline
