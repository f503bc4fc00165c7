// Package common holds the parameter and result helpers shared by the math
// providers.
//
// Tools receive loosely typed parameter maps decoded from JSON, so numbers may
// arrive as float64 or as Go integers when called in-process. The helpers
// coerce them and report missing or mistyped values.
//
// Example Usage:
//
//	expression, ok := common.GetString(params, "expression")
//	if !ok {
//	    return common.Failure("expression parameter required")
//	}
package common
