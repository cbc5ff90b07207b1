package filesystem

import (
	"context"

	"github.com/codeforge-ide/codeforge/backend/internal/types"
)

// BasicOps handles basic file operations
type BasicOps struct {
	*Ops
}

// GetTools returns basic file operation tool definitions
func (b *BasicOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.read",
			Name:        "Read File",
			Description: "Read file contents with binary detection",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.write",
			Name:        "Write File",
			Description: "Write text to a file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
				{Name: "content", Type: "string", Description: "Content to write", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.create",
			Name:        "Create File",
			Description: "Create a new empty file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.delete",
			Name:        "Delete File",
			Description: "Delete a regular file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.exists",
			Name:        "Check Existence",
			Description: "Check if a file or directory exists",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File or directory path", Required: true},
			},
			Returns: "boolean",
		},
	}
}

// Read reads file contents
func (b *BasicOps) Read(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := GetString(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	content, err := b.Service.ReadFile(path)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(toMap(content))
}

// Write writes text content to a file
func (b *BasicOps) Write(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := GetString(params, "path")
	if !ok {
		return Failure("path parameter required")
	}
	content, ok := params["content"].(string)
	if !ok {
		return Failure("content parameter required")
	}

	res, err := b.Service.WriteFile(path, content)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(toMap(res))
}

// Create creates a new empty file
func (b *BasicOps) Create(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := GetString(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	res, err := b.Service.CreateFile(path)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(toMap(res))
}

// Delete removes a regular file
func (b *BasicOps) Delete(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := GetString(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	res, err := b.Service.DeleteFile(path)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(toMap(res))
}

// Exists checks whether a path exists
func (b *BasicOps) Exists(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := GetString(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	exists, err := b.Service.Exists(path)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(map[string]interface{}{
		"path":   path,
		"exists": exists,
	})
}
