// Package filesystem exposes the filesystem service as a tool provider
// for the CodeForge backend.
//
// This package is organized into specialized modules:
//   - basic: Core file operations (read, write, create, delete, exists)
//   - directory: Directory operations (list, create, delete, total size)
//   - operations: File manipulation (rename, copy, move)
//   - metadata: File metadata and MIME detection
//   - formats: Structured formats (JSON, YAML, TOML)
//   - archives: Archive operations (ZIP, tar.gz)
//   - watch: Recursive change notification
//
// All operations:
//   - Classify failures into stable error codes
//   - Return structured JSON results
//   - Share one mutable operation config
//
// Example Usage:
//
//	svc := fs.NewService(log)
//	provider := filesystem.NewProvider(svc)
//	registry.Register(provider)
package filesystem
