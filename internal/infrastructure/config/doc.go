// Package config loads server configuration from defaults, an optional TOML
// file and environment variables, in increasing order of precedence.
//
// Example config.toml:
//
//	[server]
//	port = "9000"
//
//	[rate_limit]
//	requests_per_second = 50
//	burst = 100
//	enabled = true
//
//	[solver]
//	max_query_len = 500
package config
