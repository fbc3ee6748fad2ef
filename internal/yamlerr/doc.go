// Package yamlerr defines the closed set of error types raised by the
// parsing core and its collaborators. Each failure mode has its own
// concrete type so callers can branch with errors.As; parse-time errors
// carry a 1-based line number, access-time errors carry the key, index,
// or kind pair needed to reconstruct a diagnostic.
package yamlerr
