// Package config provides centralized configuration for the datamedic
// pipeline runner.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML configuration file
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern DATAMEDIC_* for namespacing:
//
//	DATAMEDIC_LOGGING_LEVEL=debug
//	DATAMEDIC_OUTPUT_DIR=out
//	DATAMEDIC_CLEAN_MISSING=median
//
// # Validation
//
// Loaded configuration is validated with go-playground/validator; unknown
// log levels or clean strategy names fail the load.
package config
