package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/GriffinCanCode/MathSearch/backend/internal/shared/types"
)

var (
	ErrEmptyServiceID  = errors.New("service ID cannot be empty")
	ErrInvalidToolID   = errors.New("invalid tool ID format")
	ErrServiceNotFound = errors.New("service not found")
	ErrToolNotFound    = errors.New("tool not found")
)

// Provider is implemented by every service the registry can route tool
// calls to.
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// Registry routes "<service>.<tool>" calls to registered providers.
// It is safe for concurrent use.
type Registry struct {
	services sync.Map
}

// Stats summarizes the registry contents.
type Stats struct {
	Services   int            `json:"total_services"`
	Tools      int            `json:"total_tools"`
	Categories map[string]int `json:"categories"`
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds or replaces a provider under its definition ID.
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return ErrEmptyServiceID
	}
	r.services.Store(def.ID, provider)
	return nil
}

// Unregister removes a provider.
func (r *Registry) Unregister(serviceID string) {
	r.services.Delete(serviceID)
}

// Get retrieves a provider by service ID.
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.services.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// Tool looks up a tool definition by its full ID.
func (r *Registry) Tool(toolID string) (types.Tool, error) {
	serviceID, _, ok := strings.Cut(toolID, ".")
	if !ok || serviceID == "" {
		return types.Tool{}, fmt.Errorf("%w: %s", ErrInvalidToolID, toolID)
	}
	provider, ok := r.Get(serviceID)
	if !ok {
		return types.Tool{}, fmt.Errorf("%w: %s", ErrServiceNotFound, serviceID)
	}
	for _, tool := range provider.Definition().Tools {
		if tool.ID == toolID {
			return tool, nil
		}
	}
	return types.Tool{}, fmt.Errorf("%w: %s", ErrToolNotFound, toolID)
}

// List returns registered services sorted by ID, optionally filtered by
// category.
func (r *Registry) List(category *types.Category) []types.Service {
	var services []types.Service
	r.each(func(def types.Service) {
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
	})

	sort.Slice(services, func(i, j int) bool {
		return services[i].ID < services[j].ID
	})
	return services
}

// Discover ranks services against a free-text intent such as
// "average of some numbers" and returns at most limit matches.
func (r *Registry) Discover(intent string, limit int) []types.Service {
	type scored struct {
		service types.Service
		score   float64
	}

	words := intentWords(intent)
	var results []scored
	r.each(func(def types.Service) {
		if score := relevance(words, def); score > 0 {
			results = append(results, scored{service: def, score: score})
		}
	})

	sort.Slice(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].service.ID < results[j].service.ID
	})

	if limit > len(results) {
		limit = len(results)
	}
	output := make([]types.Service, 0, limit)
	for _, res := range results[:limit] {
		output = append(output, res.service)
	}
	return output
}

// Execute routes a tool call. A malformed ID or an unknown service or tool
// returns an error wrapping one of the package sentinels together with a
// failed Result.
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if _, err := r.Tool(toolID); err != nil {
		msg := err.Error()
		return &types.Result{Success: false, Error: &msg}, err
	}

	serviceID, _, _ := strings.Cut(toolID, ".")
	provider, _ := r.Get(serviceID)
	return provider.Execute(ctx, toolID, params, appCtx)
}

// Stats returns registry statistics.
func (r *Registry) Stats() Stats {
	stats := Stats{Categories: make(map[string]int)}
	r.each(func(def types.Service) {
		stats.Services++
		stats.Tools += len(def.Tools)
		stats.Categories[string(def.Category)]++
	})
	return stats
}

func (r *Registry) each(fn func(types.Service)) {
	r.services.Range(func(_, value interface{}) bool {
		fn(value.(Provider).Definition())
		return true
	})
}

func intentWords(intent string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.FieldsFunc(strings.ToLower(intent), func(c rune) bool {
		return !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9')
	}) {
		words[w] = true
	}
	return words
}

// relevance weights: service ID or name 10, capability 4, tool name 3,
// description word 1, category 2.
func relevance(words map[string]bool, def types.Service) float64 {
	score := 0.0

	if words[def.ID] || words[strings.ToLower(def.Name)] {
		score += 10
	}
	for _, c := range def.Capabilities {
		if words[strings.ToLower(c)] {
			score += 4
		}
	}
	for _, tool := range def.Tools {
		if words[strings.ToLower(tool.Name)] {
			score += 3
		}
	}
	for _, w := range strings.Fields(strings.ToLower(def.Description)) {
		if len(w) > 3 && words[strings.Trim(w, ".,")] {
			score++
		}
	}
	if words[string(def.Category)] {
		score += 2
	}
	return score
}
