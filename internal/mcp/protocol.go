// mcp/protocol.go
// Definisi struktur dasar MCP protocol

package mcp

import "encoding/json"

type ToolRequest struct {
	Tool   string          `json:"tool"`
	Params json.RawMessage `json:"params,omitempty"`
	// Question dipakai untuk memilih tool kalau Tool kosong.
	Question string `json:"question,omitempty"`
	// Routes: eksekusi multi-tool dalam satu request.
	Routes []Route `json:"routes,omitempty"`
}

type ToolResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
