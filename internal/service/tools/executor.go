package tools

import "context"

// ToolExecutor defines the interface for executing a tool.
// Implementations must be thread-safe and respect context cancellation.
type ToolExecutor interface {
	// Execute runs the tool with the given input parameters.
	// The input map holds decoded JSON arguments as specified in the tool schema
	// (numbers arrive as float64, arrays as []interface{}).
	// The session the call belongs to is carried by ctx (see WithSession).
	Execute(ctx context.Context, input map[string]interface{}) (interface{}, error)
}
