package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/terrain-mcp/internal/imaging"
	"github.com/ironsheep/terrain-mcp/internal/terrain"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "terrain_classify").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"tool":  params.Name,
			"error": err,
		}).Warn("Tool execution failed")
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_mean_color":
		return s.handleImageMeanColor(args)

	// Classification
	case "terrain_classify":
		return s.handleTerrainClassify(args)
	case "terrain_classify_fuzzy":
		return s.handleTerrainClassifyFuzzy(args)
	case "terrain_classify_bayes":
		return s.handleTerrainClassifyBayes(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	return imaging.LoadImageInfo(s.svc.Cache(), a.Path)
}

type imageRegionArgs struct {
	Path   string `json:"path"`
	Region string `json:"region"`
}

func (s *Server) parseRegionArgs(args json.RawMessage) (imageRegionArgs, error) {
	var a imageRegionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return a, err
	}
	if a.Path == "" {
		return a, errors.New("path is required")
	}
	if a.Region == "" {
		a.Region = s.region
	}
	return a, nil
}

func (s *Server) handleImageMeanColor(args json.RawMessage) (interface{}, error) {
	a, err := s.parseRegionArgs(args)
	if err != nil {
		return nil, err
	}
	return s.svc.Means(a.Path, a.Region)
}

// === Classification Handlers ===

func (s *Server) handleTerrainClassify(args json.RawMessage) (interface{}, error) {
	a, err := s.parseRegionArgs(args)
	if err != nil {
		return nil, err
	}
	return s.svc.ClassifyFile(a.Path, a.Region)
}

type classifierArgs struct {
	Path   string         `json:"path"`
	Region string         `json:"region"`
	Means  *terrain.Means `json:"means,omitempty"`
}

// evaluationResult is the response of the single-classifier tools.
type evaluationResult struct {
	Path       string             `json:"path,omitempty"`
	Region     string             `json:"region,omitempty"`
	MeanColor  *imaging.MeanColor `json:"mean_color,omitempty"`
	Means      terrain.Means      `json:"means"`
	Evaluation interface{}        `json:"evaluation"`
}

// resolveMeans returns the explicit means if given, otherwise the means of
// the requested image region.
func (s *Server) resolveMeans(args json.RawMessage) (*evaluationResult, error) {
	var a classifierArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	switch {
	case a.Means != nil && a.Path != "":
		return nil, errors.New("provide either path or means, not both")
	case a.Means != nil:
		return &evaluationResult{Means: *a.Means}, nil
	case a.Path == "":
		return nil, errors.New("either path or means is required")
	}

	if a.Region == "" {
		a.Region = s.region
	}
	mc, err := s.svc.Means(a.Path, a.Region)
	if err != nil {
		return nil, err
	}
	return &evaluationResult{
		Path:      a.Path,
		Region:    a.Region,
		MeanColor: mc,
		Means:     mc.Means,
	}, nil
}

func (s *Server) handleTerrainClassifyFuzzy(args json.RawMessage) (interface{}, error) {
	res, err := s.resolveMeans(args)
	if err != nil {
		return nil, err
	}
	res.Evaluation = s.svc.Fuzzy().Evaluate(res.Means)
	return res, nil
}

func (s *Server) handleTerrainClassifyBayes(args json.RawMessage) (interface{}, error) {
	res, err := s.resolveMeans(args)
	if err != nil {
		return nil, err
	}
	ev, err := s.svc.Bayes().Evaluate(res.Means)
	if err != nil {
		return nil, err
	}
	res.Evaluation = ev
	return res, nil
}
