package errors

import (
	"strings"
	"unicode"
)

// maxTaskIDLength bounds task ids, which become file name stems.
const maxTaskIDLength = 200

// ValidateTaskID validates a task id before it is used to build output
// file names. It ensures the id is a simple basename without path components.
//
// Validation rules:
//   - No empty ids
//   - Maximum length of 200 characters
//   - No control characters or null bytes
//   - No path separators or traversal sequences
func ValidateTaskID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidConfig, "taskId cannot be empty")
	}

	if len(id) > maxTaskIDLength {
		return New(ErrCodeInvalidConfig, "taskId too long (max %d characters)", maxTaskIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "taskId contains invalid control characters")
		}
	}

	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidConfig, "taskId cannot contain path separators")
	}

	if id == "." || strings.Contains(id, "..") {
		return New(ErrCodeInvalidConfig, "taskId cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidatePath validates a file system path taken from a configuration
// document. Absolute and relative paths are both accepted; only values that
// can never name a file are rejected.
func ValidatePath(field, path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "%s cannot be empty", field)
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "%s too long (max %d characters)", field, maxPathLength)
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "%s contains a null byte", field)
	}

	return nil
}
