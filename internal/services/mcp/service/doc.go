// Package service hosts the charnorm MCP server.
//
// It registers the character text normalization tools on one mcp.Server and
// serves it over stdio for local clients or streamable HTTP for remote ones.
// Tool semantics live in the domain package; this package owns transport
// selection and lifecycle.
package service
