// SPDX-License-Identifier: MIT
// Package fit: rational-function fitting by Levenberg–Marquardt.
//
// Model: f(r,cos_theta) = N(r,cos_theta) / (1 + M(r,cos_theta)), with M's
// constant term pinned to 1 (excluded from its basis). All numerator and
// denominator coefficients are optimized jointly against the squared
// residuals over the full sample grid.
//
// The optimizer is a damped Gauss–Newton: at each iteration the analytic
// Jacobian is assembled and the step δ solves
//
//	(JᵀJ + λ·diag(JᵀJ)) δ = −Jᵀε
//
// with λ raised on rejected steps and lowered on accepted ones. A step is
// rejected when it fails to decrease the SSR *or* when it would push the
// denominator below MinDenominator at any sample — the optimizer steers
// away from poles instead of fitting through them. The optimizer internals
// are an implementation detail behind the (initial guess, residuals) →
// (coefficients, converged) contract; swapping in a trust-region variant
// would not change the interface.

package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lutfit/lut"
	"github.com/katalvlaran/lutfit/poly"
)

// Damping schedule and numeric guards for the LM loop.
const (
	// initialLambda is the classic starting damping factor.
	initialLambda = 1e-3

	// lambdaUp scales λ after a rejected step, lambdaDown after an
	// accepted one.
	lambdaUp   = 10.0
	lambdaDown = 0.1

	// maxStepRetries bounds the inner re-damping loop per iteration; if no
	// acceptable step is found within it, the fit stalls at the current
	// best point.
	maxStepRetries = 30

	// gradientTolerance declares convergence when the gradient ∇ = Jᵀε is
	// uniformly below it (already at a stationary point; also covers an
	// exactly-zero residual start).
	gradientTolerance = 1e-15

	// diagFloor keeps the damped normal-equation diagonal strictly
	// positive even for momentarily dead columns (e.g. denominator terms
	// while N ≡ 0).
	diagFloor = 1e-12
)

// Rational fits f = N/(1+M) to t. See the package-level notes above for
// the optimizer contract; the knobs live in Options.
//
// Stage 1 (Bases): numerator NewBasis(NumDegree), denominator
// NewBasisNoConstant(DenDegree); precompute both design matrices.
// Stage 2 (Seed): zeros, or WarmStart copies a linear fit of NumDegree
// into the numerator (a rank-deficient warm start falls back to zeros).
// Stage 3 (Iterate): damped Gauss–Newton until the relative SSR decrease
// drops below opts.Tolerance or MaxIterations is spent.
// Stage 4 (Guard+Finalize): NewRationalModel re-verifies the denominator
// over the grid and seals the model; MSE is computed through it.
//
// Errors: ErrNilTable, ErrBadOptions, ErrDenominatorVanishes. Exhausting
// the budget is NOT an error: Result.Converged=false with the best-found
// coefficients.
// Complexity: O(iterations · N·K²), K = numerator + denominator terms.
func Rational(t *lut.Table, opts Options) (Result, error) {
	if t == nil {
		return Result{}, fmt.Errorf("fit: Rational: %w", ErrNilTable)
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	numB, err := poly.NewBasis(opts.NumDegree)
	if err != nil {
		return Result{}, fmt.Errorf("fit: Rational: %w", err)
	}
	denB, err := poly.NewBasisNoConstant(opts.DenDegree)
	if err != nil {
		return Result{}, fmt.Errorf("fit: Rational: %w", err)
	}

	rs, cs := t.Coords()
	phi, err := poly.DesignMatrix(numB, rs, cs)
	if err != nil {
		return Result{}, fmt.Errorf("fit: Rational: %w", err)
	}
	var psi *mat.Dense // nil when DenDegree=0: M ≡ 0, denominator stays 1
	if len(denB) > 0 {
		if psi, err = poly.DesignMatrix(denB, rs, cs); err != nil {
			return Result{}, fmt.Errorf("fit: Rational: %w", err)
		}
	}

	var (
		n      = t.Len()
		kn     = len(numB)
		kd     = len(denB)
		params = make([]float64, kn+kd)
	)
	if opts.WarmStart {
		// Seed the numerator from the equal-degree polynomial fit; the
		// denominator starts at zero (Q ≡ 1), which always satisfies the
		// positivity guard at the starting point.
		if warm, werr := Linear(t, opts.NumDegree); werr == nil {
			copy(params, warm.Model.numCoeffs)
		}
	}

	state := newLMState(n, kn, kd, phi, psi, t.Values())
	converged, iters := state.run(params, opts)

	model, err := NewRationalModel(numB, params[:kn], denB, params[kn:], t)
	if err != nil {
		return Result{}, err
	}
	mse, err := MSE(model, t)
	if err != nil {
		return Result{}, err
	}

	return Result{Model: model, MSE: mse, Converged: converged, Iterations: iters}, nil
}

// lmState carries the per-run workspaces so the iteration body allocates
// nothing beyond gonum's factorization internals.
type lmState struct {
	n, kn, kd int
	phi, psi  *mat.Dense
	v         []float64 // ground-truth samples, flat row-major

	p, q, resid                []float64 // current point
	trialP, trialQ, trialResid []float64 // candidate point
	jac                        *mat.Dense
}

func newLMState(n, kn, kd int, phi, psi *mat.Dense, v []float64) *lmState {
	return &lmState{
		n: n, kn: kn, kd: kd,
		phi: phi, psi: psi, v: v,
		p: make([]float64, n), q: make([]float64, n), resid: make([]float64, n),
		trialP: make([]float64, n), trialQ: make([]float64, n), trialResid: make([]float64, n),
		jac: mat.NewDense(n, kn+kd, nil),
	}
}

// evaluate fills p = Φ·num, q = 1+Ψ·den and ε = p/q − v for the given
// parameters, returning the SSR and the minimum denominator value seen.
func (st *lmState) evaluate(params []float64, p, q, resid []float64) (ssr, minQ float64) {
	num := mat.NewVecDense(st.kn, params[:st.kn])
	pv := mat.NewVecDense(st.n, p)
	pv.MulVec(st.phi, num)

	if st.kd > 0 {
		den := mat.NewVecDense(st.kd, params[st.kn:])
		qv := mat.NewVecDense(st.n, q)
		qv.MulVec(st.psi, den)
	} else {
		for s := range q {
			q[s] = 0
		}
	}

	minQ = math.Inf(1)
	for s := 0; s < st.n; s++ {
		q[s]++ // fold in the pinned constant term
		if q[s] < minQ {
			minQ = q[s]
		}
		resid[s] = p[s]/q[s] - st.v[s]
		ssr += resid[s] * resid[s]
	}

	return ssr, minQ
}

// run drives the damped Gauss–Newton loop, mutating params in place to the
// best point found. Returns the converged flag and iterations spent.
func (st *lmState) run(params []float64, opts Options) (converged bool, iters int) {
	ssr, minQ := st.evaluate(params, st.p, st.q, st.resid)
	if minQ < MinDenominator {
		// Unreachable from the zero/warm seeds (Q ≡ 1 there), kept as a
		// guard for future seeding strategies: stop at the start point and
		// let the post-fit validation reject it.
		return false, 0
	}

	var (
		lambda = initialLambda
		kk     = st.kn + st.kd
		grad   = mat.NewVecDense(kk, nil)
		delta  = mat.NewVecDense(kk, nil)
		jtj    mat.Dense
		trial  = make([]float64, kk)
	)

	for iters = 0; iters < opts.MaxIterations; iters++ {
		st.fillJacobian()

		residVec := mat.NewVecDense(st.n, st.resid)
		grad.MulVec(st.jac.T(), residVec)
		if mat.Norm(grad, math.Inf(1)) < gradientTolerance {
			return true, iters
		}
		jtj.Mul(st.jac.T(), st.jac)

		// Inner damping loop: raise λ until a step both decreases the SSR
		// and keeps the denominator clear of zero.
		accepted := false
		var trialSSR float64
		for retry := 0; retry < maxStepRetries; retry++ {
			if !solveDamped(&jtj, grad, lambda, delta) {
				lambda *= lambdaUp

				continue
			}
			for k := 0; k < kk; k++ {
				trial[k] = params[k] - delta.AtVec(k)
			}

			var trialMinQ float64
			trialSSR, trialMinQ = st.evaluate(trial, st.trialP, st.trialQ, st.trialResid)
			if trialMinQ < MinDenominator || trialSSR > ssr {
				lambda *= lambdaUp

				continue
			}
			accepted = true

			break
		}
		if !accepted {
			// No damping level yields an admissible decrease: the SSR
			// cannot be improved further, so the current point is the
			// (local) optimum within working precision.
			return true, iters
		}

		copy(params, trial)
		copy(st.p, st.trialP)
		copy(st.q, st.trialQ)
		copy(st.resid, st.trialResid)
		lambda *= lambdaDown

		rel := (ssr - trialSSR) / math.Max(ssr, math.SmallestNonzeroFloat64)
		ssr = trialSSR
		if rel < opts.Tolerance {
			return true, iters + 1
		}
	}

	return false, iters
}

// fillJacobian assembles ∂ε_s/∂θ_k at the current point:
//
//	numerator column k:    Φ[s,k] / q_s
//	denominator column k:  −(p_s/q_s) · Ψ[s,k] / q_s
func (st *lmState) fillJacobian() {
	for s := 0; s < st.n; s++ {
		invQ := 1 / st.q[s]
		f := st.p[s] * invQ
		for k := 0; k < st.kn; k++ {
			st.jac.Set(s, k, st.phi.At(s, k)*invQ)
		}
		for k := 0; k < st.kd; k++ {
			st.jac.Set(s, st.kn+k, -f*st.psi.At(s, k)*invQ)
		}
	}
}

// solveDamped solves (JᵀJ + λ·diag(JᵀJ))·delta = grad via Cholesky,
// reporting false when the damped matrix is still not positive definite
// (caller raises λ and retries). The diagonal is floored so momentarily
// dead columns cannot zero out their damping term.
func solveDamped(jtj *mat.Dense, grad *mat.VecDense, lambda float64, delta *mat.VecDense) bool {
	kk, _ := jtj.Dims()
	sym := mat.NewSymDense(kk, nil)
	for i := 0; i < kk; i++ {
		for j := i; j < kk; j++ {
			sym.SetSym(i, j, jtj.At(i, j))
		}
		sym.SetSym(i, i, jtj.At(i, i)+lambda*math.Max(jtj.At(i, i), diagFloor))
	}

	var chol mat.Cholesky
	if !chol.Factorize(sym) {
		return false
	}

	return chol.SolveVecTo(delta, grad) == nil
}
