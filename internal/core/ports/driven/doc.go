// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - FileSystem: Per-call file access for the file handler exercise
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package and the standard library
//   - Cannot Import: Any adapter package
package driven
