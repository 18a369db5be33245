package interval

import (
	"github.com/GriffinCanCode/asymintervals/internal/service"
)

func coreTools() []service.Tool {
	return []service.Tool{
		{
			ID:          "interval.create",
			Name:        "Create Interval",
			Description: "Construct an asymmetric interval from its bounds and expected value",
			Parameters: []service.Parameter{
				{Name: "lower", Type: "number", Description: "Lower bound", Required: true},
				{Name: "upper", Type: "number", Description: "Upper bound", Required: true},
				{Name: "expected", Type: "number", Description: "Expected value, defaults to the midpoint", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "interval.describe",
			Name:        "Describe Interval",
			Description: "Report densities, asymmetry, variance, and summary text for an interval",
			Parameters: []service.Parameter{
				{Name: "interval", Type: "interval", Description: "Interval to describe", Required: true},
				{Name: "precision", Type: "number", Description: "Digits in the summary text, defaults to 4", Required: false},
			},
			Returns: "object",
		},
	}
}

func arithmeticTools() []service.Tool {
	binary := func(id, name, description string) service.Tool {
		return service.Tool{
			ID:          id,
			Name:        name,
			Description: description,
			Parameters: []service.Parameter{
				{Name: "a", Type: "interval|number", Description: "Left operand", Required: true},
				{Name: "b", Type: "interval|number", Description: "Right operand", Required: true},
			},
			Returns: "object",
		}
	}

	return []service.Tool{
		binary("interval.add", "Add", "Add two intervals or an interval and a number"),
		binary("interval.subtract", "Subtract", "Subtract b from a"),
		binary("interval.multiply", "Multiply", "Multiply two intervals or an interval and a number"),
		binary("interval.divide", "Divide", "Divide a by b"),
		binary("interval.power", "Power", "Raise a to the power of b"),
		{
			ID:          "interval.negate",
			Name:        "Negate",
			Description: "Mirror an interval about zero",
			Parameters: []service.Parameter{
				{Name: "x", Type: "interval", Description: "Interval to negate", Required: true},
			},
			Returns: "object",
		},
	}
}

func transcendentalTools() []service.Tool {
	unary := func(id, name, description string) service.Tool {
		return service.Tool{
			ID:          id,
			Name:        name,
			Description: description,
			Parameters: []service.Parameter{
				{Name: "x", Type: "interval", Description: "Input interval", Required: true},
			},
			Returns: "object",
		}
	}

	return []service.Tool{
		unary("interval.log", "Natural Log", "Natural logarithm of a positive interval"),
		unary("interval.log2", "Log Base 2", "Base-2 logarithm of a positive interval"),
		unary("interval.log10", "Log Base 10", "Base-10 logarithm of a positive interval"),
		unary("interval.exp", "Exponential", "e raised to an interval"),
		unary("interval.sin", "Sine", "Sine of an interval spanning less than a half period"),
		unary("interval.cos", "Cosine", "Cosine of an interval spanning less than a half period"),
		unary("interval.tan", "Tangent", "Tangent of an interval avoiding the poles"),
		{
			ID:          "interval.rpow",
			Name:        "Reflected Power",
			Description: "Raise a positive scalar base to an interval exponent",
			Parameters: []service.Parameter{
				{Name: "base", Type: "number", Description: "Base, positive and not 1", Required: true},
				{Name: "x", Type: "interval", Description: "Exponent interval", Required: true},
			},
			Returns: "object",
		},
	}
}

func distributionTools() []service.Tool {
	return []service.Tool{
		{
			ID:          "interval.pdf",
			Name:        "Density",
			Description: "Evaluate the probability density at a point",
			Parameters: []service.Parameter{
				{Name: "interval", Type: "interval", Description: "Interval distribution", Required: true},
				{Name: "x", Type: "number", Description: "Evaluation point", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "interval.cdf",
			Name:        "Cumulative Distribution",
			Description: "Evaluate the cumulative distribution at a point",
			Parameters: []service.Parameter{
				{Name: "interval", Type: "interval", Description: "Interval distribution", Required: true},
				{Name: "x", Type: "number", Description: "Evaluation point", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "interval.quantile",
			Name:        "Quantile",
			Description: "Invert the cumulative distribution at a probability",
			Parameters: []service.Parameter{
				{Name: "interval", Type: "interval", Description: "Interval distribution", Required: true},
				{Name: "p", Type: "number", Description: "Probability in [0, 1]", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "interval.sample",
			Name:        "Sample",
			Description: "Draw random values distributed per the interval density",
			Parameters: []service.Parameter{
				{Name: "interval", Type: "interval", Description: "Interval distribution", Required: true},
				{Name: "count", Type: "number", Description: "Number of draws", Required: true},
				{Name: "seed", Type: "number", Description: "Seed for reproducible draws", Required: false},
			},
			Returns: "array",
		},
	}
}

func comparisonTools() []service.Tool {
	relation := func(id, name, description string) service.Tool {
		return service.Tool{
			ID:          id,
			Name:        name,
			Description: description,
			Parameters: []service.Parameter{
				{Name: "a", Type: "interval|number", Description: "Left operand", Required: true},
				{Name: "b", Type: "interval|number", Description: "Right operand", Required: true},
			},
			Returns: "number",
		}
	}

	tools := []service.Tool{
		relation("interval.gt", "Greater Than", "Probability that a exceeds b"),
		relation("interval.ge", "Greater Or Equal", "Probability that a is at least b"),
		relation("interval.lt", "Less Than", "Probability that a falls below b"),
		relation("interval.le", "Less Or Equal", "Probability that a is at most b"),
		relation("interval.eq", "Equal", "Probability mass shared at coinciding points"),
	}

	compare := relation("interval.compare", "Compare", "All five order probabilities between a and b")
	compare.Returns = "object"
	return append(tools, compare)
}

func distanceTools() []service.Tool {
	metric := func(id, name, description string) service.Tool {
		return service.Tool{
			ID:          id,
			Name:        name,
			Description: description,
			Parameters: []service.Parameter{
				{Name: "a", Type: "interval", Description: "First interval", Required: true},
				{Name: "b", Type: "interval", Description: "Second interval", Required: true},
			},
			Returns: "number",
		}
	}

	return []service.Tool{
		metric("interval.dist.w1", "Wasserstein-1", "Average displacement between two interval distributions"),
		metric("interval.dist.w2", "Wasserstein-2", "Quadratic transport distance between two interval distributions"),
		metric("interval.dist.winf", "Wasserstein-Inf", "Worst-case displacement between two interval distributions"),
		{
			ID:          "interval.dist.matrix",
			Name:        "Distance Matrix",
			Description: "Pairwise distances between a list of intervals",
			Parameters: []service.Parameter{
				{Name: "intervals", Type: "array", Description: "Intervals to compare", Required: true},
				{Name: "metric", Type: "string", Description: "One of w1, w2, winf; defaults to w2", Required: false},
			},
			Returns: "object",
		},
	}
}

func fitTools() []service.Tool {
	return []service.Tool{
		{
			ID:          "interval.fit.sample",
			Name:        "Fit From Sample",
			Description: "Estimate an interval from raw observations using the sample extremes and mean",
			Parameters: []service.Parameter{
				{Name: "values", Type: "array", Description: "Observations", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "interval.fit.quantiles",
			Name:        "Fit From Quantiles",
			Description: "Estimate an interval from empirical quantiles, trimming outliers",
			Parameters: []service.Parameter{
				{Name: "values", Type: "array", Description: "Observations", Required: true},
				{Name: "lo", Type: "number", Description: "Lower quantile, defaults to 0.05", Required: false},
				{Name: "hi", Type: "number", Description: "Upper quantile, defaults to 0.95", Required: false},
			},
			Returns: "object",
		},
	}
}

func graphTools() []service.Tool {
	return []service.Tool{
		{
			ID:          "interval.graph.build",
			Name:        "Build Comparison Graph",
			Description: "Build a pairwise comparison graph over named intervals",
			Parameters: []service.Parameter{
				{Name: "nodes", Type: "array", Description: "Ordered list of {name, interval} objects", Required: true},
				{Name: "mode", Type: "string", Description: "One of undirected, directed, dominance; defaults to undirected", Required: false},
				{Name: "edge_threshold", Type: "number", Description: "Drop edges with weight at or below this value", Required: false},
			},
			Returns: "object",
		},
	}
}
