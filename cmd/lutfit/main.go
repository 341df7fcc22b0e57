// Command lutfit fits a closed-form expression to a 2D lookup table and
// prints it together with the mean squared error over the full grid.
//
// The defaults reproduce the reference sheen-LUT fit: a 128×128 table
// approximated by a rational function with numerator degree 5 and
// denominator degree 3.
//
// Usage:
//
//	lutfit -input thirdparty/sheen_lut_data.txt
//	lutfit -input lut.txt -mode linear -degree 4 -plot residuals.png
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/katalvlaran/lutfit/fit"
	"github.com/katalvlaran/lutfit/lut"
	"github.com/katalvlaran/lutfit/poly"
	"github.com/katalvlaran/lutfit/viz"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lutfit: ")

	var (
		input     = flag.String("input", "", "path to the table file (required)")
		rows      = flag.Int("rows", 128, "table rows (r / roughness axis)")
		cols      = flag.Int("cols", 128, "table columns (cos_theta axis)")
		mode      = flag.String("mode", "rational", "fitting mode: linear or rational")
		degree    = flag.Int("degree", fit.DefaultLinearDegree, "polynomial degree (linear mode)")
		numDegree = flag.Int("num-degree", fit.DefaultNumeratorDegree, "numerator degree (rational mode)")
		denDegree = flag.Int("den-degree", fit.DefaultDenominatorDegree, "denominator degree (rational mode)")
		maxIter   = flag.Int("max-iter", fit.DefaultMaxIterations, "iteration budget (rational mode)")
		tol       = flag.Float64("tol", fit.DefaultTolerance, "relative convergence tolerance (rational mode)")
		warm      = flag.Bool("warm-start", true, "seed the numerator from a linear fit (rational mode)")
		precision = flag.Int("precision", poly.ShortestPrecision,
			"coefficient digits; -1 prints shortest exact round-trip form")
		plotPath = flag.String("plot", "", "optional residual heatmap PNG path")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		log.Fatal("missing -input")
	}

	if err := run(*input, *rows, *cols, *mode, *degree, *numDegree, *denDegree,
		*maxIter, *tol, *warm, *precision, *plotPath); err != nil {
		log.Fatal(err)
	}
}

// run executes the load → fit → format → report pipeline; every failure
// names its stage.
func run(input string, rows, cols int, mode string, degree, numDegree, denDegree,
	maxIter int, tol float64, warm bool, precision int, plotPath string) error {
	table, err := lut.LoadFile(input, rows, cols)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	opts := fit.DefaultOptions()
	opts.Degree = degree
	opts.NumDegree = numDegree
	opts.DenDegree = denDegree
	opts.MaxIterations = maxIter
	opts.Tolerance = tol
	opts.WarmStart = warm
	switch mode {
	case "linear":
		opts.Mode = fit.ModeLinear
	case "rational":
		opts.Mode = fit.ModeRational
	default:
		return fmt.Errorf("fit: unknown -mode %q: %w", mode, fit.ErrUnknownMode)
	}

	res, err := fit.Fit(table, opts)
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}

	expr, err := res.Model.Format(precision)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}

	switch res.Model.Mode() {
	case fit.ModeLinear:
		fmt.Printf("f(r, cos_theta) = %s\n", expr.Numerator)
	case fit.ModeRational:
		fmt.Printf("numerator   = %s\n", expr.Numerator)
		fmt.Printf("denominator = %s\n", expr.Denominator)
	}
	fmt.Printf("MSE: %g\n", res.MSE)

	if !res.Converged {
		log.Printf("warning: iteration budget (%d) exhausted before tolerance %g; "+
			"reporting best-found coefficients", opts.MaxIterations, opts.Tolerance)
	}

	if plotPath != "" {
		if err := viz.SaveResidualHeatmap(table, res.Model, plotPath); err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		log.Printf("residual heatmap written to %s", plotPath)
	}

	return nil
}
