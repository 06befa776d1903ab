package math

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/MathSearch/backend/internal/domain/examples"
	"github.com/GriffinCanCode/MathSearch/backend/internal/engine/expr"
	"github.com/GriffinCanCode/MathSearch/backend/internal/engine/solver"
	"github.com/GriffinCanCode/MathSearch/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/MathSearch/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/MathSearch/backend/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/MathSearch/backend/internal/shared/types"
	"github.com/GriffinCanCode/MathSearch/backend/internal/shared/utils"
)

// Provider exposes the evaluator, the solver and the example catalog as
// service tools.
type Provider struct {
	solver      *solver.Registry
	catalog     *examples.Catalog
	logger      *logging.Logger
	metrics     *monitoring.Metrics
	tracer      *tracing.Tracer
	maxQueryLen int
}

// NewProvider creates a math provider. A nil registry uses the default
// classifier order.
func NewProvider(registry *solver.Registry, catalog *examples.Catalog, logger *logging.Logger) *Provider {
	if registry == nil {
		registry = solver.DefaultRegistry()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Provider{
		solver:      registry,
		catalog:     catalog,
		logger:      logger.Named("math"),
		maxQueryLen: utils.DefaultMaxQueryLength,
	}
}

// WithMetrics records solver and evaluator outcomes.
func (p *Provider) WithMetrics(metrics *monitoring.Metrics) *Provider {
	p.metrics = metrics
	return p
}

// WithTracer submits a span for every tool call.
func (p *Provider) WithTracer(tracer *tracing.Tracer) *Provider {
	p.tracer = tracer
	return p
}

// WithMaxQueryLen overrides the accepted query length.
func (p *Provider) WithMaxQueryLen(n int) *Provider {
	if n > 0 {
		p.maxQueryLen = n
	}
	return p
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "math",
		Name:        "Math Service",
		Description: "Safe arithmetic evaluation and step-by-step solutions for common math questions",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"arithmetic",
			"algebra",
			"geometry",
			"statistics",
			"sequences",
		},
		Tools: tools(),
	}
}

// Execute routes to the tool implementation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if p.tracer == nil {
		return p.execute(ctx, toolID, params, appCtx)
	}

	span, ctx := p.tracer.StartSpan(ctx, toolID)
	result, err := p.execute(ctx, toolID, params, appCtx)
	span.Finish()
	switch {
	case err != nil:
		span.SetError(err)
	case !result.Success:
		span.SetTag("failure", *result.Error)
	default:
		if classifier, ok := result.Data["classifier"].(string); ok {
			span.SetTag("classifier", classifier)
		}
	}
	p.tracer.Submit(span)
	return result, err
}

func (p *Provider) execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "math.evaluate":
		return p.Evaluate(ctx, params, appCtx)
	case "math.solve":
		return p.Solve(ctx, params, appCtx)
	case "math.classifiers":
		return p.Classifiers(ctx, params, appCtx)
	case "math.examples":
		return p.Examples(ctx, params, appCtx)
	case "math.mean":
		return p.Mean(ctx, params, appCtx)
	case "math.median":
		return p.Median(ctx, params, appCtx)
	case "math.stdev":
		return p.Stdev(ctx, params, appCtx)
	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

// Evaluate computes an arithmetic expression
func (p *Provider) Evaluate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	expression, ok := GetString(params, "expression")
	if !ok {
		return Failure("expression parameter required")
	}
	if err := utils.ValidateExpression(expression, p.maxQueryLen); err != nil {
		return Failure(err.Error())
	}

	value, err := expr.Evaluate(expression)
	kind := ""
	if err != nil {
		kind = expr.Kind(err)
	}
	if p.metrics != nil {
		p.metrics.RecordEval(kind)
	}
	if err != nil {
		p.logger.Debug("evaluation failed", logging.ErrorKind(kind), zap.Error(err))
		return FailureWith(err.Error(), map[string]interface{}{"kind": kind})
	}

	data := NumberData(value)
	data["expression"] = expression
	return Success(data)
}

// Solve answers a free-form query. No match is still a success: the data
// carries matched=false and the fallback sentence.
func (p *Provider) Solve(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	query, ok := GetString(params, "query")
	if !ok {
		return Failure("query parameter required")
	}
	if err := utils.ValidateQuery(query, p.maxQueryLen); err != nil {
		return Failure(err.Error())
	}

	res, matched := p.SolveQuery(query)
	if !matched {
		return Success(map[string]interface{}{
			"matched": false,
			"query":   query,
			"speech":  solver.FallbackSpeech(query),
		})
	}
	return Success(SolutionData(res))
}

// SolveQuery runs the classifier registry, logging and recording the outcome.
func (p *Provider) SolveQuery(query string) (*solver.Result, bool) {
	start := time.Now()
	res, ok := p.solver.Solve(query)
	elapsed := time.Since(start)

	classifier := ""
	if ok {
		classifier = res.Classifier
	}
	if p.metrics != nil {
		p.metrics.RecordSolve(classifier, elapsed)
	}

	if ok {
		p.logger.Debug("query solved",
			logging.Classifier(classifier),
			zap.Duration("elapsed", elapsed),
		)
	} else {
		p.logger.Debug("query unmatched", logging.Query(query))
	}
	return res, ok
}

// SolutionData flattens a solver result into tool output.
func SolutionData(res *solver.Result) map[string]interface{} {
	return map[string]interface{}{
		"matched":     true,
		"classifier":  res.Classifier,
		"expression":  res.Expression,
		"result":      res.Result,
		"steps":       res.Steps,
		"explanation": res.Explanation,
		"speech":      res.Speech,
	}
}

// Classifiers lists classifier names in dispatch order
func (p *Provider) Classifiers(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return Success(map[string]interface{}{"classifiers": p.solver.Names()})
}

// Examples returns catalog entries, optionally filtered by category
func (p *Provider) Examples(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if p.catalog == nil {
		return Failure("example catalog not loaded")
	}

	category, _ := GetString(params, "category")
	if err := utils.ValidateCategory(category); err != nil {
		return Failure(err.Error())
	}

	list := p.catalog.ByCategory(category)
	out := make([]interface{}, len(list))
	for i, ex := range list {
		out[i] = map[string]interface{}{
			"query":      ex.Query,
			"category":   ex.Category,
			"classifier": ex.Classifier,
		}
	}
	return Success(map[string]interface{}{"examples": out})
}
