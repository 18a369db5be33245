package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/asymintervals/ain"
	"github.com/GriffinCanCode/asymintervals/distance"
	"github.com/GriffinCanCode/asymintervals/fit"
)

// parseInterval reads "lower,upper" or "lower,upper,expected".
func parseInterval(s string) (ain.AIN, error) {
	parts := strings.Split(s, ",")
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return ain.AIN{}, fmt.Errorf("interval %q: %w", s, err)
		}
		vals = append(vals, v)
	}
	return ain.FromSlice(vals)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	vals := make([]float64, 0, 3)
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("bound %q: %w", arg, err)
		}
		vals = append(vals, v)
	}
	x, err := ain.FromSlice(vals)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(cmd, map[string]interface{}{
			"lower":      x.Lower(),
			"upper":      x.Upper(),
			"expected":   x.Expected(),
			"alpha":      x.Alpha(),
			"beta":       x.Beta(),
			"asymmetry":  x.Asymmetry(),
			"variance":   x.Variance(),
			"std_dev":    x.StdDev(),
			"midpoint":   x.Midpoint(),
			"width":      x.Width(),
			"degenerate": x.IsDegenerate(),
		})
	}

	text, err := x.Summary(summaryPrecision)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

// relationProbs evaluates all five order relations of a against b.
func relationProbs(a, b ain.AIN) (map[string]float64, error) {
	relations := []struct {
		key  string
		eval func(ain.Operand) (float64, error)
	}{
		{"gt", a.Gt},
		{"ge", a.Ge},
		{"lt", a.Lt},
		{"le", a.Le},
		{"eq", a.Eq},
	}

	out := make(map[string]float64, len(relations))
	for _, rel := range relations {
		p, err := rel.eval(b)
		if err != nil {
			return nil, err
		}
		out[rel.key] = p
	}
	return out, nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, err := parseInterval(args[0])
	if err != nil {
		return err
	}
	b, err := parseInterval(args[1])
	if err != nil {
		return err
	}

	probs, err := relationProbs(a, b)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(cmd, probs)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "P(A > B)  = %.6f\n", probs["gt"])
	fmt.Fprintf(out, "P(A >= B) = %.6f\n", probs["ge"])
	fmt.Fprintf(out, "P(A < B)  = %.6f\n", probs["lt"])
	fmt.Fprintf(out, "P(A <= B) = %.6f\n", probs["le"])
	fmt.Fprintf(out, "P(A = B)  = %.6f\n", probs["eq"])
	return nil
}

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

func runDist(cmd *cobra.Command, args []string) error {
	a, err := parseInterval(args[0])
	if err != nil {
		return err
	}
	b, err := parseInterval(args[1])
	if err != nil {
		return err
	}
	metric, err := metricByName(distMetric)
	if err != nil {
		return err
	}

	d := metric(a, b)
	if jsonOut {
		return printJSON(cmd, map[string]interface{}{
			"metric":   strings.ToLower(distMetric),
			"distance": d,
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%g\n", d)
	return nil
}

func runSample(cmd *cobra.Command, args []string) error {
	x, err := parseInterval(args[0])
	if err != nil {
		return err
	}
	if sampleCount <= 0 {
		return fmt.Errorf("count must be positive")
	}

	var rng *rand.Rand
	if sampleSeed != 0 {
		rng = rand.New(rand.NewSource(sampleSeed))
	}
	values, err := x.Sample(sampleCount, rng)
	if err != nil {
		return err
	}

	switch {
	case jsonOut:
		return printJSON(cmd, map[string]interface{}{
			"values": values,
			"count":  len(values),
		})
	case sampleCSV:
		w := csv.NewWriter(cmd.OutOrStdout())
		if err := w.Write([]string{"index", "value"}); err != nil {
			return err
		}
		for i, v := range values {
			record := []string{strconv.Itoa(i), strconv.FormatFloat(v, 'g', -1, 64)}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	default:
		out := cmd.OutOrStdout()
		for _, v := range values {
			fmt.Fprintf(out, "%g\n", v)
		}
		return nil
	}
}

// readValues loads one numeric column from a CSV file. A non-numeric
// first row is treated as a header and skipped.
func readValues(path string, column int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	values := make([]float64, 0, len(records))
	for i, record := range records {
		if column >= len(record) {
			return nil, fmt.Errorf("%s row %d: no column %d", path, i+1, column)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(record[column]), 64)
		if err != nil {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("%s row %d: %w", path, i+1, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func runFit(cmd *cobra.Command, args []string) error {
	values, err := readValues(args[0], fitColumn)
	if err != nil {
		return err
	}

	var x ain.AIN
	if fitQuantiles {
		x, err = fit.FromQuantiles(values, fitLo, fitHi)
	} else {
		x, err = fit.FromSample(values)
	}
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(cmd, map[string]interface{}{
			"lower":    x.Lower(),
			"upper":    x.Upper(),
			"expected": x.Expected(),
			"count":    len(values),
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s  (n=%d)\n", x, len(values))
	return nil
}
