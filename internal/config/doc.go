// Package config handles configuration loading for portfolio-server.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults.
//
// # Configuration File
//
// Default locations (in order):
//
//  1. Path from PORTFOLIO_CONFIG environment variable
//  2. ./portfolio.yaml (current directory)
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	auth:
//	  jwt_secret: "${PORTFOLIO_JWT_SECRET}"
//
// Syntax: ${VAR_NAME}
//
// # Configuration Sections
//
// Server settings:
//
//	server:
//	  http_addr: "0.0.0.0:5008"
//
// Database:
//
//	database:
//	  path: "/var/lib/portfolio/portfolio.db"
//
// Authentication:
//
//	auth:
//	  jwt_secret: "${PORTFOLIO_JWT_SECRET}"  # Required
//	  token_ttl: "1h"                        # Login token lifetime (default 1h)
//
// Logging:
//
//	logging:
//	  level: "info"    # debug, info, warn, error
//	  format: "text"   # text (colorized) or json
//
// The signing secret is loaded once at startup and held for the life of the
// process; there is no runtime rotation.
package config
