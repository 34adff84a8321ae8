package errors

import "maps"

// ErrorCategory represents the broad category of an error for classification and routing.
type ErrorCategory string

const (
	// CategoryInput represents an unreadable source unit.
	CategoryInput ErrorCategory = "input"
	// CategoryStructure represents malformed delimiters: unterminated metadata
	// spans and hash regions.
	CategoryStructure ErrorCategory = "structure"
	// CategorySemantic represents unknown or missing metadata commands.
	CategorySemantic ErrorCategory = "semantic"
	// CategoryHash represents a failure of the external hashing routine.
	CategoryHash ErrorCategory = "hash"

	// CategoryConfig represents user-facing configuration and invocation errors.
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// CategoryStore represents reference queue persistence errors.
	CategoryStore      ErrorCategory = "store"
	CategoryFileSystem ErrorCategory = "filesystem"

	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates the impact level of an error.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution completely
	SeverityError   ErrorSeverity = "error"   // Fails the current unit
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// ErrorContext provides structured context for errors.
type ErrorContext map[string]any

// Set adds or updates a context value.
func (c ErrorContext) Set(key string, value any) ErrorContext {
	if c == nil {
		c = make(ErrorContext)
	}
	c[key] = value
	return c
}

// Merge combines two contexts, with other taking precedence.
func (c ErrorContext) Merge(other ErrorContext) ErrorContext {
	if c == nil {
		return other
	}
	if other == nil {
		return c
	}
	result := make(ErrorContext)
	maps.Copy(result, c)
	maps.Copy(result, other)
	return result
}
