// Package config handles configuration loading for roster services.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults. Both binaries
// (roster-api and roster-public) read the same file so they share one
// database and one signing secret.
//
// # Configuration File
//
// Default locations (in order):
//
//  1. Path from ROSTER_CONFIG environment variable
//  2. $XDG_CONFIG_HOME/roster/roster.yaml
//  3. ~/.config/roster/roster.yaml
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	auth:
//	  jwt_secret: "${ROSTER_JWT_SECRET}"
//
// # Configuration Sections
//
//	server:
//	  api_addr: ":3000"     # interactive API (register/login/candidates)
//	  public_addr: ":3001"  # API-key-protected public API
//
//	database:
//	  path: "/var/lib/roster/roster.db"
//
//	auth:
//	  jwt_secret: "${ROSTER_JWT_SECRET}"  # required, min 32 bytes
//	  token_ttl: "24h"                    # session token lifetime
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// # Validation
//
// Load() validates:
//
//   - JWT secret presence and minimum length (32 bytes, after expansion)
//   - Database path presence
//   - Duration format validity
package config
