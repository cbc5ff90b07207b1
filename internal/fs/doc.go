// Package fs implements the filesystem service backing the CodeForge UI.
//
// The service is a stateful façade over the live filesystem: it owns a
// registry of active directory watchers and a configuration record that
// controls overwrite, parent-creation, permission and symlink behavior.
// Every operation is synchronous and reads the filesystem at request
// time; nothing is cached.
//
// Operations are organized by concern:
//   - content: read, write, create (binary sniffing, utf-8 validation)
//   - operations: delete, rename, copy, directory creation
//   - metadata: stat with normalized cross-platform timestamps
//   - listing: directory enumeration with hidden filtering and ordering
//   - watcher: recursive change notification via fsnotify
//
// All failures are classified into the closed Error taxonomy; callers
// branch on the error kind, never on message text.
package fs
