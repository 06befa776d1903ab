package types

// EvaluateRequest asks the expression evaluator for a value
type EvaluateRequest struct {
	Expression string `json:"expression" binding:"required"`
}

// SolveRequest asks the classifier/solver to answer a free-form query
type SolveRequest struct {
	Query string `json:"query" binding:"required"`
}

// DiscoverRequest finds services relevant to an intent
type DiscoverRequest struct {
	Message string `json:"message" binding:"required"`
	Limit   int    `json:"limit,omitempty"`
}

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID    string                 `json:"tool_id" binding:"required"`
	Params    map[string]interface{} `json:"params" binding:"required"`
	SessionID *string                `json:"session_id,omitempty"`
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}
