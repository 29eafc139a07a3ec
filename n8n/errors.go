package n8n

import "errors"

var (
	ErrWorkflowNotFound   = errors.New("workflow not found")
	ErrContainerNameEmpty = errors.New("container name cannot be empty")
	ErrNoUpdateSource     = errors.New("update requires inline data or a file path")
	ErrConflictingUpdate  = errors.New("inline data and file path are mutually exclusive")
)
