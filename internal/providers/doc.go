// Package providers implements the service provider system for the
// CodeForge backend.
//
// Service providers expose capabilities to the desktop UI through a
// standardized tool-based interface.
//
// Available Providers:
//   - Filesystem: File operations, directories, metadata, formats,
//     archives, and change notification
//   - System: Host information and utilities
//
// Provider Interface:
//   - Definition(): Returns service metadata and tool definitions
//   - Execute(): Executes a tool with parameters and context
//
// Example Usage:
//
//	provider := filesystem.NewProvider(svc)
//	result, err := provider.Execute(ctx, "filesystem.read", params, appCtx)
package providers
