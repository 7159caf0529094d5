package server

import "github.com/ironsheep/terrain-mcp/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func regionProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        imaging.Regions(),
		"description": "Optional named region of the image to analyze. Defaults to the server's configured region (normally full).",
	}
}

func meansProperty() map[string]interface{} {
	channel := func(name string) map[string]interface{} {
		return map[string]interface{}{
			"type":        "number",
			"description": "Mean " + name + " intensity, nominally 0-255",
		}
	}
	return map[string]interface{}{
		"type":        "object",
		"description": "Explicit channel means to classify instead of an image",
		"properties": map[string]interface{}{
			"r": channel("red"),
			"g": channel("green"),
			"b": channel("blue"),
		},
		"required": []string{"r", "g", "b"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_mean_color",
			Description: "Compute the mean red, green and blue intensity (0-255) of an image or region, with the average color as hex and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"region": regionProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Classification
		{
			Name:        "terrain_classify",
			Description: "Classify an image as tundra, forest, desert or ocean with both the naive Bayes and the fuzzy classifier. Score vectors are ordered [tundra, forest, desert, ocean].",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"region": regionProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "terrain_classify_fuzzy",
			Description: "Classify with the fuzzy rule base only. Returns the nine membership degrees and the unnormalized rule strengths [tundra, forest, desert, ocean]. Provide either path or means.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"region": regionProperty(),
					"means":  meansProperty(),
				},
			},
		},
		{
			Name:        "terrain_classify_bayes",
			Description: "Classify with the naive Bayes model only. Returns per-class likelihoods, the evidence and the posterior distribution [tundra, forest, desert, ocean]. Provide either path or means.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"region": regionProperty(),
					"means":  meansProperty(),
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
