// Package github wraps the GitHub REST API for repoman's repository
// lifecycle operations: listing, searching, inspecting, changing visibility,
// archiving and deleting, individually or in bulk.
//
// The package includes:
// - APIClient interface for the lifecycle operations, with a real Client
// - Structured error classification at the client boundary
// - Session with the lazily-cached authenticated username
// - Client-side filtering and partitioning over listings
// - The sequential bulk runner with per-target failure isolation
package github
