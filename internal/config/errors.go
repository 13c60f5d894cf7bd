package config

import (
	"fmt"
)

// MissingConfigError reports an explicitly requested config file that does not exist.
type MissingConfigError struct {
	Path string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("config file missing: %s", e.Path)
}

// InvalidYAMLError reports a config file that is not a valid yaml document.
type InvalidYAMLError struct {
	Wrapped error
}

func (e *InvalidYAMLError) Error() string {
	return fmt.Sprintf("fmtgate.yml is not a valid yaml document: %v", e.Wrapped)
}

func (e *InvalidYAMLError) Unwrap() error {
	return e.Wrapped
}

// SchemaViolationError reports a config file that parses but does not satisfy
// the fmtgate configuration schema.
type SchemaViolationError struct {
	Wrapped error
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("fmtgate.yml does not match the configuration schema: %v", e.Wrapped)
}

func (e *SchemaViolationError) Unwrap() error {
	return e.Wrapped
}

// MissingPropertyError reports a required property that resolved to an empty value.
type MissingPropertyError struct {
	Property string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("fmtgate.yml is missing required property: %s", e.Property)
}

// InvalidExtensionError reports an extension entry that cannot match any file name.
type InvalidExtensionError struct {
	Value string
}

func (e *InvalidExtensionError) Error() string {
	return fmt.Sprintf("fmtgate.yml extension '%s' is invalid: extensions must start with '.'", e.Value)
}

// DuplicateSourceDirError reports a source directory listed more than once.
type DuplicateSourceDirError struct {
	Path string
}

func (e *DuplicateSourceDirError) Error() string {
	return fmt.Sprintf("fmtgate.yml lists source directory more than once: %s", e.Path)
}
