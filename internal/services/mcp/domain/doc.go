// Package domain translates MCP tool calls into character text normalization
// operations.
//
// Each tool maps one protocol request onto one pure operation (field
// extraction, name validation, name suggestion) and returns structured output
// that MCP clients can render without re-parsing text.
package domain
