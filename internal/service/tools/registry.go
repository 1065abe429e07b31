package tools

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"pitchdeck/internal/domain"
)

// ToolCall represents a single tool invocation request.
type ToolCall struct {
	ID    string                 `json:"id,omitempty"` // caller-assigned correlation id
	Name  string                 `json:"name"`         // tool name
	Input map[string]interface{} `json:"input"`        // tool parameters
}

// ToolResult represents the result of a tool execution.
type ToolResult struct {
	ID      string      `json:"id,omitempty"` // matches ToolCall.ID
	Name    string      `json:"name"`         // matches ToolCall.Name
	Result  interface{} `json:"result"`       // execution result (nil if error)
	Error   error       `json:"-"`            // execution error (nil if success)
	IsError bool        `json:"is_error"`     // whether execution failed
}

// ToolRegistry manages tool executors and handles tool execution.
// It is thread-safe and can be used concurrently.
type ToolRegistry struct {
	mu        sync.RWMutex
	executors map[string]ToolExecutor
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		executors: make(map[string]ToolExecutor),
	}
}

// Register adds a tool executor to the registry.
// If a tool with the same name already exists, it will be replaced.
func (r *ToolRegistry) Register(name string, executor ToolExecutor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.executors[name] = executor
}

// Get retrieves a tool executor by name.
// Returns nil if the tool is not registered.
func (r *ToolRegistry) Get(name string) ToolExecutor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.executors[name]
}

// Names returns the registered tool names, sorted.
func (r *ToolRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.executors))
	for name := range r.executors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs a single tool and returns the result.
// An unknown tool yields a domain.NotFoundError in the result.
func (r *ToolRegistry) Execute(ctx context.Context, call ToolCall) ToolResult {
	executor := r.Get(call.Name)
	if executor == nil {
		return ToolResult{
			ID:      call.ID,
			Name:    call.Name,
			Error:   &domain.NotFoundError{Message: fmt.Sprintf("tool not found: %s", call.Name)},
			IsError: true,
		}
	}

	input := call.Input
	if input == nil {
		input = map[string]interface{}{}
	}

	result, err := executor.Execute(ctx, input)
	if err != nil {
		return ToolResult{
			ID:      call.ID,
			Name:    call.Name,
			Error:   err,
			IsError: true,
		}
	}

	return ToolResult{
		ID:     call.ID,
		Name:   call.Name,
		Result: result,
	}
}
