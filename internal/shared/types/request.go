package types

// CalculateRequest asks for a single evaluation of an expression
type CalculateRequest struct {
	Expression string `json:"expression" binding:"required"`
	Unit       string `json:"unit"`
	Precision  *int   `json:"precision"`
}

// PlotRequest asks for a sampled chart of an expression
type PlotRequest struct {
	Expression string `json:"expression" binding:"required"`
	Unit       string `json:"unit"`
}

// RewriteRequest asks for the trig-rewritten form of an expression
type RewriteRequest struct {
	Expression string `json:"expression" binding:"required"`
	Unit       string `json:"unit"`
}

// ThemeRequest sets the display mode
type ThemeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params"`
}

// StreamMessage is a client message on the /stream WebSocket
type StreamMessage struct {
	Type       string `json:"type"`
	Expression string `json:"expression,omitempty"`
	Unit       string `json:"unit,omitempty"`
	Precision  *int   `json:"precision,omitempty"`
}
