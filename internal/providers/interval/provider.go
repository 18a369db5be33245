package interval

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/asymintervals/internal/service"
)

// DefaultMaxSamples caps a single sampling request.
const DefaultMaxSamples = 100000

// Provider implements asymmetric interval operations
type Provider struct {
	maxSamples int
}

// NewProvider creates an interval provider. maxSamples bounds a single
// sampling request; non-positive values fall back to DefaultMaxSamples.
func NewProvider(maxSamples int) *Provider {
	if maxSamples <= 0 {
		maxSamples = DefaultMaxSamples
	}
	return &Provider{maxSamples: maxSamples}
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() service.Service {
	tools := []service.Tool{}
	tools = append(tools, coreTools()...)
	tools = append(tools, arithmeticTools()...)
	tools = append(tools, transcendentalTools()...)
	tools = append(tools, distributionTools()...)
	tools = append(tools, comparisonTools()...)
	tools = append(tools, distanceTools()...)
	tools = append(tools, fitTools()...)
	tools = append(tools, graphTools()...)

	return service.Service{
		ID:          "interval",
		Name:        "Interval Service",
		Description: "Asymmetric interval arithmetic, distributions, comparison, and fitting",
		Category:    service.CategoryCompute,
		Capabilities: []string{
			"arithmetic",
			"transcendental",
			"distribution",
			"comparison",
			"distance",
			"fitting",
			"graphs",
		},
		Tools: tools,
	}
}

// Execute routes to the appropriate operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*service.Result, error) {
	switch toolID {
	// Core operations
	case "interval.create":
		return p.create(ctx, params)
	case "interval.describe":
		return p.describe(ctx, params)

	// Arithmetic operations
	case "interval.add":
		return p.add(ctx, params)
	case "interval.subtract":
		return p.subtract(ctx, params)
	case "interval.multiply":
		return p.multiply(ctx, params)
	case "interval.divide":
		return p.divide(ctx, params)
	case "interval.power":
		return p.power(ctx, params)
	case "interval.negate":
		return p.negate(ctx, params)

	// Transcendental operations
	case "interval.log":
		return p.log(ctx, params)
	case "interval.log2":
		return p.log2(ctx, params)
	case "interval.log10":
		return p.log10(ctx, params)
	case "interval.exp":
		return p.exp(ctx, params)
	case "interval.sin":
		return p.sin(ctx, params)
	case "interval.cos":
		return p.cos(ctx, params)
	case "interval.tan":
		return p.tan(ctx, params)
	case "interval.rpow":
		return p.rpow(ctx, params)

	// Distribution operations
	case "interval.pdf":
		return p.pdf(ctx, params)
	case "interval.cdf":
		return p.cdf(ctx, params)
	case "interval.quantile":
		return p.quantile(ctx, params)
	case "interval.sample":
		return p.sample(ctx, params)

	// Comparison operations
	case "interval.gt":
		return p.gt(ctx, params)
	case "interval.ge":
		return p.ge(ctx, params)
	case "interval.lt":
		return p.lt(ctx, params)
	case "interval.le":
		return p.le(ctx, params)
	case "interval.eq":
		return p.eq(ctx, params)
	case "interval.compare":
		return p.compare(ctx, params)

	// Distance operations
	case "interval.dist.w1":
		return p.distW1(ctx, params)
	case "interval.dist.w2":
		return p.distW2(ctx, params)
	case "interval.dist.winf":
		return p.distWInf(ctx, params)
	case "interval.dist.matrix":
		return p.distMatrix(ctx, params)

	// Fitting operations
	case "interval.fit.sample":
		return p.fitSample(ctx, params)
	case "interval.fit.quantiles":
		return p.fitQuantiles(ctx, params)

	// Graph operations
	case "interval.graph.build":
		return p.graphBuild(ctx, params)

	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
