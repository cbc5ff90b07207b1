package filesystem

import (
	"context"

	"github.com/codeforge-ide/codeforge/backend/internal/types"
)

// FormatOps handles structured file formats
type FormatOps struct {
	*Ops
}

// GetTools returns structured format tool definitions
func (f *FormatOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.read_json",
			Name:        "Read JSON",
			Description: "Read and parse a JSON file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.write_json",
			Name:        "Write JSON",
			Description: "Write data as a JSON file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
				{Name: "data", Type: "object", Description: "Data to write", Required: true},
				{Name: "pretty", Type: "boolean", Description: "Indent output", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.read_yaml",
			Name:        "Read YAML",
			Description: "Read and parse a YAML file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.write_yaml",
			Name:        "Write YAML",
			Description: "Write data as a YAML file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
				{Name: "data", Type: "object", Description: "Data to write", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.read_toml",
			Name:        "Read TOML",
			Description: "Read and parse a TOML file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.write_toml",
			Name:        "Write TOML",
			Description: "Write data as a TOML file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
				{Name: "data", Type: "object", Description: "Data to write", Required: true},
			},
			Returns: "object",
		},
	}
}

// ReadJSON reads and parses a JSON file
func (f *FormatOps) ReadJSON(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := GetString(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	v, err := f.Service.ReadJSON(path)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(map[string]interface{}{"path": path, "data": v})
}

// WriteJSON writes data as JSON
func (f *FormatOps) WriteJSON(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := GetString(params, "path")
	if !ok {
		return Failure("path parameter required")
	}
	data, ok := params["data"]
	if !ok {
		return Failure("data parameter required")
	}
	pretty := GetBool(params, "pretty", false)

	res, err := f.Service.WriteJSON(path, data, pretty)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(toMap(res))
}

// ReadYAML reads and parses a YAML file
func (f *FormatOps) ReadYAML(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := GetString(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	v, err := f.Service.ReadYAML(path)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(map[string]interface{}{"path": path, "data": v})
}

// WriteYAML writes data as YAML
func (f *FormatOps) WriteYAML(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := GetString(params, "path")
	if !ok {
		return Failure("path parameter required")
	}
	data, ok := params["data"]
	if !ok {
		return Failure("data parameter required")
	}

	res, err := f.Service.WriteYAML(path, data)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(toMap(res))
}

// ReadTOML reads and parses a TOML file
func (f *FormatOps) ReadTOML(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := GetString(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	v, err := f.Service.ReadTOML(path)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(map[string]interface{}{"path": path, "data": v})
}

// WriteTOML writes data as TOML
func (f *FormatOps) WriteTOML(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := GetString(params, "path")
	if !ok {
		return Failure("path parameter required")
	}
	data, ok := params["data"]
	if !ok {
		return Failure("data parameter required")
	}

	res, err := f.Service.WriteTOML(path, data)
	if err != nil {
		return FailureFromError(err)
	}
	return Success(toMap(res))
}
