// Package http implements the JSON API of the math search server.
//
// Routes:
//
//	GET  /                  service identity
//	GET  /health            registry and catalog status
//	POST /math/evaluate     {expression} -> {value, display, expression} | 422 {error, kind}
//	POST /math/solve        {query} -> {matched, result} | {matched:false, speech}
//	GET  /math/examples     example catalog, ?category= filter
//	GET  /services          registered services, ?category= filter
//	POST /services/discover {message, limit}
//	POST /services/execute  {tool_id, params}
//	GET  /metrics/json      counter snapshot
//
// User text that is echoed back is passed through a strict bluemonday policy.
package http
