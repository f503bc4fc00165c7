package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/GriffinCanCode/SciCalc/backend/internal/shared/types"
)

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// Registry holds the calculator's providers keyed by service ID
type Registry struct {
	services sync.Map
}

// NewRegistry creates a new service registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a service provider, replacing any with the same ID
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}

	r.services.Store(def.ID, provider)
	return nil
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.services.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// List returns registered services ordered by ID, optionally filtered by category
func (r *Registry) List(category *types.Category) []types.Service {
	services := []types.Service{}
	r.each(func(def types.Service) {
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
	})
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services
}

// Discover ranks services against a free-text query such as "plot sine"
func (r *Registry) Discover(query string, limit int) []types.Service {
	type scored struct {
		service types.Service
		score   int
	}

	q := strings.ToLower(query)
	var results []scored
	r.each(func(def types.Service) {
		if s := relevance(q, def); s > 0 {
			results = append(results, scored{service: def, score: s})
		}
	})

	sort.Slice(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].service.ID < results[j].service.ID
	})

	output := make([]types.Service, 0, limit)
	for i := 0; i < len(results) && i < limit; i++ {
		output = append(output, results[i].service)
	}
	return output
}

// Execute routes a tool call such as "math.evaluate" to its service
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	serviceID, _, found := strings.Cut(toolID, ".")
	if !found || serviceID == "" {
		return nil, fmt.Errorf("invalid tool ID format: %s", toolID)
	}

	provider, ok := r.Get(serviceID)
	if !ok {
		return nil, fmt.Errorf("service not found: %s", serviceID)
	}
	if params == nil {
		params = map[string]interface{}{}
	}
	return provider.Execute(ctx, toolID, params, appCtx)
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var total, tools int
	categories := make(map[string]int)
	r.each(func(def types.Service) {
		total++
		tools += len(def.Tools)
		categories[string(def.Category)]++
	})

	return map[string]interface{}{
		"total_services": total,
		"total_tools":    tools,
		"categories":     categories,
	}
}

func (r *Registry) each(fn func(types.Service)) {
	r.services.Range(func(_, value interface{}) bool {
		fn(value.(Provider).Definition())
		return true
	})
}

func relevance(query string, def types.Service) int {
	score := 0
	if strings.Contains(query, def.ID) || strings.Contains(query, strings.ToLower(def.Name)) {
		score += 10
	}
	for _, capability := range def.Capabilities {
		if strings.Contains(query, strings.ToLower(capability)) {
			score += 3
		}
	}
	for _, tool := range def.Tools {
		if strings.Contains(query, strings.ToLower(tool.Name)) {
			score += 2
		}
	}
	if strings.Contains(query, string(def.Category)) {
		score += 2
	}
	return score
}
