// Package config loads runtime configuration for the policy client.
//
// # Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A dotenv file (-e/-env, or ./.env) and POLICY_* environment variables.
//  3. An optional config file selected via -c or -config. Files ending in
//     .toml are decoded as TOML after ${VAR} expansion; others as JSON.
//  4. Command-line flags, which override earlier values.
//
// # Flags
//
//	-a string   REST API base URL
//	-m string   media base URL
//	-d string   local data directory
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # Environment
//
//	POLICY_API_URL, POLICY_MEDIA_URL, POLICY_MEDIA_BACKEND, POLICY_S3_BUCKET,
//	POLICY_S3_REGION, POLICY_S3_ENDPOINT, POLICY_S3_ACCESS_KEY,
//	POLICY_S3_SECRET_KEY, POLICY_S3_PREFIX, POLICY_DATA_DIR,
//	POLICY_REQUEST_TIMEOUT, POLICY_MESSAGE_TTL, POLICY_LOG_LEVEL,
//	POLICY_LOG_BACKEND, POLICY_LOG_FILE, POLICY_NO_COLOR (and NO_COLOR)
//
// # File schema
//
//	{
//	  "api_base_url": "http://127.0.0.1:8000/api",
//	  "media_backend": "s3",
//	  "s3": {"bucket": "profiles", "endpoint": "http://localhost:9000"},
//	  "request_timeout": "10s",
//	  "log": {"level": "debug", "backend": "zap"}
//	}
package config
