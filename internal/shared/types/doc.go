// Package types provides shared data structures for the calculator backend.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool definition
//   - Context: Execution context for operations
//   - Result: Standard operation result
//
// Request Types:
//   - CalculateRequest: single evaluation with unit and precision
//   - PlotRequest: sampled chart of an expression in x
//   - RewriteRequest: trig calls replaced by their values
//   - ThemeRequest: light/dark display mode
//   - ExecuteRequest: generic service tool execution
//
// Example Usage:
//
//	result := &types.Result{
//	    Success: true,
//	    Data:    map[string]interface{}{"value": 3.33},
//	}
package types
