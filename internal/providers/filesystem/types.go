package filesystem

import (
	"github.com/bytedance/sonic"

	"github.com/codeforge-ide/codeforge/backend/internal/fs"
	"github.com/codeforge-ide/codeforge/backend/internal/types"
)

// Ops carries the shared state for all filesystem tool groups.
type Ops struct {
	Service *fs.Service
}

// Success helper
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure helper
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// FailureFromError builds a failed result from a service error,
// carrying its stable code when the error belongs to the taxonomy.
func FailureFromError(err error) (*types.Result, error) {
	msg := err.Error()
	res := &types.Result{Success: false, Error: &msg}
	if kind, ok := fs.KindOf(err); ok {
		code := string(kind)
		res.ErrorCode = &code
	}
	return res, nil
}

// GetString extracts a string param with validation
func GetString(params map[string]interface{}, key string) (string, bool) {
	v, ok := params[key].(string)
	return v, ok && v != ""
}

// GetBool extracts a bool param, returning the default when absent
func GetBool(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}

// toMap converts a typed result into the generic Data payload.
func toMap(v interface{}) map[string]interface{} {
	b, err := sonic.Marshal(v)
	if err != nil {
		return nil
	}
	var m map[string]interface{}
	if err := sonic.Unmarshal(b, &m); err != nil {
		return nil
	}
	return m
}
