package filesystem

import (
	"context"

	"github.com/codeforge-ide/codeforge/backend/internal/types"
)

// MetadataOps handles metadata retrieval
type MetadataOps struct {
	*Ops
}

// GetTools returns metadata tool definitions
func (m *MetadataOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.stat",
			Name:        "File Info",
			Description: "Get normalized file or directory metadata",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File or directory path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.mime_type",
			Name:        "Detect MIME Type",
			Description: "Detect MIME type from file content",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "string",
		},
	}
}

// Stat returns file metadata
func (m *MetadataOps) Stat(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := GetString(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	md, err := m.Service.Stat(path)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(toMap(md))
}

// MimeType sniffs the content-derived MIME type
func (m *MetadataOps) MimeType(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := GetString(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	mt, err := m.Service.DetectMimeType(path)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(map[string]interface{}{
		"path":      path,
		"mime_type": mt,
	})
}
