package tools

import "fmt"

// UnknownToolError reports an invocation naming no registered tool.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}

// ToolExecutionError wraps any fault raised while validating arguments or
// executing a tool, so the transport never sees an unhandled failure.
type ToolExecutionError struct {
	Tool    string
	Message string
	Cause   error
}

func (e *ToolExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("tool %s failed: %s: %v", e.Tool, e.Message, e.Cause)
	}
	return fmt.Sprintf("tool %s failed: %s", e.Tool, e.Message)
}

func (e *ToolExecutionError) Unwrap() error {
	return e.Cause
}
