// Package service routes tool calls to registered providers.
//
// Tool IDs have the form "<service>.<tool>" (for example "math.solve").
// Execute resolves the service and checks the tool is declared in the
// provider's Definition before calling it; lookup failures wrap
// ErrInvalidToolID, ErrServiceNotFound or ErrToolNotFound.
//
// Discover ranks services for a free-text intent by whole-word matches
// against the service ID, capabilities, tool names and description.
//
//	registry := service.NewRegistry()
//	registry.Register(mathProvider)
//	services := registry.Discover("solve a quadratic", 5)
//	result, err := registry.Execute(ctx, "math.solve", params, appCtx)
package service
