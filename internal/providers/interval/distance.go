package interval

import (
	"context"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/GriffinCanCode/asymintervals/distance"
	"github.com/GriffinCanCode/asymintervals/internal/service"
)

func (p *Provider) metric(params map[string]interface{}, metric distance.Metric) (*service.Result, error) {
	a, err := GetInterval(params, "a")
	if err != nil {
		return Failure(err.Error())
	}
	b, err := GetInterval(params, "b")
	if err != nil {
		return Failure(err.Error())
	}

	return Success(map[string]interface{}{"result": metric(a, b)})
}

// distW1 computes the Wasserstein-1 distance
func (p *Provider) distW1(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	return p.metric(params, distance.W1)
}

// distW2 computes the Wasserstein-2 distance
func (p *Provider) distW2(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	return p.metric(params, distance.W2)
}

// distWInf computes the Wasserstein-infinity distance
func (p *Provider) distWInf(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	return p.metric(params, distance.WInf)
}

// metricByName resolves a metric selector string.
func metricByName(name string) (distance.Metric, error) {
	switch strings.ToLower(name) {
	case "", "w2":
		return distance.W2, nil
	case "w1":
		return distance.W1, nil
	case "winf":
		return distance.WInf, nil
	default:
		return nil, fmt.Errorf("unknown metric %q", name)
	}
}

// distMatrix computes pairwise distances between a list of intervals
func (p *Provider) distMatrix(ctx context.Context, params map[string]interface{}) (*service.Result, error) {
	items, err := GetIntervals(params, "intervals")
	if err != nil {
		return Failure(err.Error())
	}

	name, _ := GetString(params, "metric")
	metric, err := metricByName(name)
	if err != nil {
		return Failure(err.Error())
	}

	m := distance.Matrix(items, metric)
	rows := make([][]float64, len(items))
	for i := range rows {
		rows[i] = mat.Row(nil, i, m)
	}

	return Success(map[string]interface{}{
		"matrix": rows,
		"size":   len(items),
	})
}
