package filesystem

import (
	"context"

	"github.com/codeforge-ide/codeforge/backend/internal/types"
)

// ArchiveOps handles archive creation and extraction
type ArchiveOps struct {
	*Ops
}

// GetTools returns archive tool definitions
func (a *ArchiveOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.zip_create",
			Name:        "Create ZIP",
			Description: "Archive a file or directory into a zip",
			Parameters: []types.Parameter{
				{Name: "source", Type: "string", Description: "Path to archive", Required: true},
				{Name: "destination", Type: "string", Description: "Zip file path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.zip_extract",
			Name:        "Extract ZIP",
			Description: "Extract a zip archive into a directory",
			Parameters: []types.Parameter{
				{Name: "source", Type: "string", Description: "Zip file path", Required: true},
				{Name: "destination", Type: "string", Description: "Target directory", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.targz_create",
			Name:        "Create tar.gz",
			Description: "Archive a file or directory into a gzip tarball",
			Parameters: []types.Parameter{
				{Name: "source", Type: "string", Description: "Path to archive", Required: true},
				{Name: "destination", Type: "string", Description: "Tarball path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.targz_extract",
			Name:        "Extract tar.gz",
			Description: "Extract a gzip tarball into a directory",
			Parameters: []types.Parameter{
				{Name: "source", Type: "string", Description: "Tarball path", Required: true},
				{Name: "destination", Type: "string", Description: "Target directory", Required: true},
			},
			Returns: "object",
		},
	}
}

func srcDst(params map[string]interface{}) (string, string, bool) {
	src, ok := GetString(params, "source")
	if !ok {
		return "", "", false
	}
	dst, ok := GetString(params, "destination")
	if !ok {
		return "", "", false
	}
	return src, dst, true
}

// ZipCreate archives a path into a zip file
func (a *ArchiveOps) ZipCreate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	src, dst, ok := srcDst(params)
	if !ok {
		return Failure("source and destination parameters required")
	}

	res, err := a.Service.CreateZip(src, dst)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(toMap(res))
}

// ZipExtract extracts a zip archive
func (a *ArchiveOps) ZipExtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	src, dst, ok := srcDst(params)
	if !ok {
		return Failure("source and destination parameters required")
	}

	res, err := a.Service.ExtractZip(src, dst)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(toMap(res))
}

// TarGzCreate archives a path into a gzip tarball
func (a *ArchiveOps) TarGzCreate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	src, dst, ok := srcDst(params)
	if !ok {
		return Failure("source and destination parameters required")
	}

	res, err := a.Service.CreateTarGz(src, dst)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(toMap(res))
}

// TarGzExtract extracts a gzip tarball
func (a *ArchiveOps) TarGzExtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	src, dst, ok := srcDst(params)
	if !ok {
		return Failure("source and destination parameters required")
	}

	res, err := a.Service.ExtractTarGz(src, dst)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(toMap(res))
}
