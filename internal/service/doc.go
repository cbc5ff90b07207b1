// Package service provides the service registry for the CodeForge
// backend.
//
// The registry maintains a catalog of service providers and routes
// tool execution to them by namespaced tool ID.
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//
// Features:
//   - Thread-safe service registration
//   - Category-based filtering
//   - Tool execution with context passing
//   - Service statistics
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(filesystemProvider)
//	result, err := registry.Execute(ctx, "filesystem.read", params, appCtx)
package service
