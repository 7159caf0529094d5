// Package server implements the MCP (Model Context Protocol) server for the
// terrain classifiers.
//
// The server speaks JSON-RPC 2.0 over stdio, one message per line:
//   - Input: JSON-RPC requests on stdin
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image Information:
//   - image_load: Load an image and get its metadata
//   - image_mean_color: Mean red, green and blue of an image or region
//
// Classification:
//   - terrain_classify: Run both classifiers on an image or region
//   - terrain_classify_fuzzy: Fuzzy rule strengths and memberships
//   - terrain_classify_bayes: Naive Bayes likelihoods and posteriors
//
// The two single-classifier tools accept either an image path or explicit
// channel means, so callers can probe the models without an image.
//
// Every score vector is ordered [tundra, forest, desert, ocean].
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the process, so
// repeated calls against one image read it from disk once.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
