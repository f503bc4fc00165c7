// Package service provides the service registry for calculator providers.
//
// Providers (math, theme) describe their tools through Definition and run
// them through Execute. The registry lets the HTTP layer list every tool and
// call any of them by its dotted ID.
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(mathProvider)
//	services := registry.Discover("plot sine", 5)
//	result, err := registry.Execute(ctx, "math.evaluate", params, appCtx)
package service
