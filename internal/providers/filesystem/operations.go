package filesystem

import (
	"context"

	"github.com/codeforge-ide/codeforge/backend/internal/types"
)

// OperationOps handles file manipulation
type OperationOps struct {
	*Ops
}

// GetTools returns file manipulation tool definitions
func (o *OperationOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.rename",
			Name:        "Rename",
			Description: "Rename a file or directory",
			Parameters: []types.Parameter{
				{Name: "from", Type: "string", Description: "Current path", Required: true},
				{Name: "to", Type: "string", Description: "New path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.copy",
			Name:        "Copy File",
			Description: "Copy a file, preserving permission bits",
			Parameters: []types.Parameter{
				{Name: "from", Type: "string", Description: "Source path", Required: true},
				{Name: "to", Type: "string", Description: "Destination path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.move",
			Name:        "Move",
			Description: "Move a file or directory, with cross-device fallback",
			Parameters: []types.Parameter{
				{Name: "from", Type: "string", Description: "Source path", Required: true},
				{Name: "to", Type: "string", Description: "Destination path", Required: true},
			},
			Returns: "object",
		},
	}
}

func fromTo(params map[string]interface{}) (string, string, bool) {
	from, ok := GetString(params, "from")
	if !ok {
		return "", "", false
	}
	to, ok := GetString(params, "to")
	if !ok {
		return "", "", false
	}
	return from, to, true
}

// Rename renames a file or directory
func (o *OperationOps) Rename(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	from, to, ok := fromTo(params)
	if !ok {
		return Failure("from and to parameters required")
	}

	res, err := o.Service.Rename(from, to)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(toMap(res))
}

// Copy copies a file
func (o *OperationOps) Copy(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	from, to, ok := fromTo(params)
	if !ok {
		return Failure("from and to parameters required")
	}

	res, err := o.Service.CopyFile(from, to)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(toMap(res))
}

// Move relocates a file or directory
func (o *OperationOps) Move(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	from, to, ok := fromTo(params)
	if !ok {
		return Failure("from and to parameters required")
	}

	res, err := o.Service.Move(from, to)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(toMap(res))
}
