// Package mcp implements the Model Context Protocol (MCP) server for lexindex.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/ordinalab/lexindex/pkg/lexindex"
)

// Custom MCP error codes for lexindex.
const (
	// ErrCodeNoRoom indicates no key exists between the given bounds.
	ErrCodeNoRoom = -32001

	// ErrCodeTimeout indicates the request timed out or was canceled.
	ErrCodeTimeout = -32002

	// Standard JSON-RPC error codes.
	ErrCodeInvalidRequest = -32600
	ErrCodeMethodNotFound = -32601
	ErrCodeInvalidParams  = -32602
	ErrCodeInternalError  = -32603
)

// MCPError represents an MCP protocol error with code and message.
type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// MapError converts engine errors to MCP errors. Caller mistakes (bad
// keys, inverted bounds) map to invalid params so clients can fix and
// retry; exhausted gaps get their own code so clients can tell
// "rebalance and retry" apart from "you sent garbage".
func MapError(err error) *MCPError {
	if err == nil {
		return nil
	}

	// Already mapped
	var mcpErr *MCPError
	if errors.As(err, &mcpErr) {
		return mcpErr
	}

	switch {
	case errors.Is(err, lexindex.ErrNoRoom):
		return &MCPError{
			Code:    ErrCodeNoRoom,
			Message: fmt.Sprintf("%s. Reassign keys around the gap and retry.", err.Error()),
		}
	case errors.Is(err, lexindex.ErrEmptyIndex),
		errors.Is(err, lexindex.ErrInvalidCharacter),
		errors.Is(err, lexindex.ErrTerminalMinimum),
		errors.Is(err, lexindex.ErrNotOrdered),
		errors.Is(err, lexindex.ErrBadAlphabet):
		return &MCPError{
			Code:    ErrCodeInvalidParams,
			Message: err.Error(),
		}
	case errors.Is(err, context.DeadlineExceeded):
		return &MCPError{
			Code:    ErrCodeTimeout,
			Message: "Request timed out.",
		}
	case errors.Is(err, context.Canceled):
		return &MCPError{
			Code:    ErrCodeTimeout,
			Message: "Request was canceled.",
		}
	default:
		return &MCPError{
			Code:    ErrCodeInternalError,
			Message: "Internal server error.",
		}
	}
}

// NewInvalidParamsError creates an error for invalid parameters with a custom message.
func NewInvalidParamsError(msg string) *MCPError {
	return &MCPError{
		Code:    ErrCodeInvalidParams,
		Message: msg,
	}
}

// NewMethodNotFoundError creates an error for unknown methods/tools.
func NewMethodNotFoundError(name string) *MCPError {
	return &MCPError{
		Code:    ErrCodeMethodNotFound,
		Message: fmt.Sprintf("Tool '%s' not found.", name),
	}
}

// NewResourceNotFoundError creates an error for unknown resources.
func NewResourceNotFoundError(uri string) *MCPError {
	return &MCPError{
		Code:    ErrCodeMethodNotFound,
		Message: fmt.Sprintf("Resource '%s' not found.", uri),
	}
}
