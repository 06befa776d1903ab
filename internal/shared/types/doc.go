// Package types provides shared data structures for the math search backend.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Context: Execution context for operations
//   - Result: Standard operation result
//
// Request Types:
//   - EvaluateRequest, SolveRequest: math engine calls
//   - ExecuteRequest, DiscoverRequest: service tool execution and discovery
//   - WSMessage: WebSocket communication
//
// Example Usage:
//
//	result, err := registry.Execute(ctx, "math.solve", map[string]interface{}{
//	    "query": "20% of 150",
//	}, &types.Context{})
package types
