package filesystem

import (
	"context"

	"github.com/codeforge-ide/codeforge/backend/internal/fs"
	"github.com/codeforge-ide/codeforge/backend/internal/types"
)

// WatchOps handles the watch registry and service configuration
type WatchOps struct {
	*Ops
}

// GetTools returns watch and config tool definitions
func (w *WatchOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.watch",
			Name:        "Watch Directory",
			Description: "Start a recursive watch on a directory",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.unwatch",
			Name:        "Stop Watching",
			Description: "Stop an active directory watch",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Watched directory path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.watches",
			Name:        "List Watches",
			Description: "List active watch roots",
			Parameters:  []types.Parameter{},
			Returns:     "array",
		},
		{
			ID:          "filesystem.get_config",
			Name:        "Get Config",
			Description: "Get current operation configuration",
			Parameters:  []types.Parameter{},
			Returns:     "object",
		},
		{
			ID:          "filesystem.set_config",
			Name:        "Set Config",
			Description: "Replace the operation configuration",
			Parameters: []types.Parameter{
				{Name: "overwrite", Type: "boolean", Description: "Allow overwriting existing files", Required: false},
				{Name: "create_parent_dirs", Type: "boolean", Description: "Create missing parent directories", Required: false},
				{Name: "preserve_permissions", Type: "boolean", Description: "Preserve permissions on copy", Required: false},
				{Name: "follow_symlinks", Type: "boolean", Description: "Follow symlinks during traversal", Required: false},
			},
			Returns: "object",
		},
	}
}

// Watch starts a recursive directory watch
func (w *WatchOps) Watch(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := GetString(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	handle, err := w.Service.WatchDirectory(path)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(map[string]interface{}{
		"path":     handle.Path(),
		"watching": true,
	})
}

// Unwatch stops an active watch
func (w *WatchOps) Unwatch(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := GetString(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	if err := w.Service.StopWatching(path); err != nil {
		return FailureFromError(err)
	}
	return Success(map[string]interface{}{
		"path":     path,
		"watching": false,
	})
}

// Watches lists active watch roots
func (w *WatchOps) Watches(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return Success(map[string]interface{}{
		"paths": w.Service.WatchedPaths(),
	})
}

// GetConfig returns the current operation config
func (w *WatchOps) GetConfig(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return Success(toMap(w.Service.Config()))
}

// SetConfig replaces the operation config. Omitted fields keep their
// current values.
func (w *WatchOps) SetConfig(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	cfg := w.Service.Config()
	next := fs.Config{
		Overwrite:           GetBool(params, "overwrite", cfg.Overwrite),
		CreateParentDirs:    GetBool(params, "create_parent_dirs", cfg.CreateParentDirs),
		PreservePermissions: GetBool(params, "preserve_permissions", cfg.PreservePermissions),
		FollowSymlinks:      GetBool(params, "follow_symlinks", cfg.FollowSymlinks),
	}
	w.Service.SetConfig(next)
	return Success(toMap(next))
}
