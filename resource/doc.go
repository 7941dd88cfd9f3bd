// Package resource limits the goroutines that tree construction may spawn.
//
// A single Controller can be shared by many concurrent builds to keep the
// total number of helper goroutines in a process bounded, independent of the
// worker budget each build asks for.
package resource
