package filesystem

import (
	"context"

	"github.com/codeforge-ide/codeforge/backend/internal/types"
)

// DirectoryOps handles directory operations
type DirectoryOps struct {
	*Ops
}

// GetTools returns directory operation tool definitions
func (d *DirectoryOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.list",
			Name:        "List Directory",
			Description: "List directory contents, directories first",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
				{Name: "include_hidden", Type: "boolean", Description: "Include dot-prefixed entries", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.mkdir",
			Name:        "Create Directory",
			Description: "Create a new directory (recursive)",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.rmdir",
			Name:        "Delete Directory",
			Description: "Delete directory recursively",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.total_size",
			Name:        "Total Size",
			Description: "Sum the sizes of all files under a path",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File or directory path", Required: true},
			},
			Returns: "number",
		},
	}
}

// List enumerates directory contents
func (d *DirectoryOps) List(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := GetString(params, "path")
	if !ok {
		return Failure("path parameter required")
	}
	includeHidden := GetBool(params, "include_hidden", false)

	listing, err := d.Service.ListDirectory(path, includeHidden)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(toMap(listing))
}

// Mkdir creates a directory
func (d *DirectoryOps) Mkdir(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := GetString(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	res, err := d.Service.CreateDirectory(path)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(toMap(res))
}

// Rmdir deletes a directory recursively
func (d *DirectoryOps) Rmdir(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := GetString(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	res, err := d.Service.DeleteDirectory(path)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(toMap(res))
}

// TotalSize sums file sizes under a path
func (d *DirectoryOps) TotalSize(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := GetString(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	total, err := d.Service.TotalSize(path)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(map[string]interface{}{
		"path":        path,
		"total_bytes": total,
	})
}
