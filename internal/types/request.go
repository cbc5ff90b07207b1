package types

// ExecuteRequest is the payload for executing a service tool over HTTP.
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params" binding:"required"`
	AppID  *string                `json:"app_id,omitempty"`
}

// StreamRequest is a client message on the WebSocket stream.
// Supported types: "watch" (subscribe to a directory), "unwatch"
// (cancel a subscription), "ping".
type StreamRequest struct {
	Type           string `json:"type"`
	Path           string `json:"path,omitempty"`
	SubscriptionID string `json:"subscription_id,omitempty"`
}

// StreamMessage is a server message on the WebSocket stream.
type StreamMessage struct {
	Type           string      `json:"type"`
	SubscriptionID string      `json:"subscription_id,omitempty"`
	Path           string      `json:"path,omitempty"`
	Event          interface{} `json:"event,omitempty"`
	Error          string      `json:"error,omitempty"`
}
