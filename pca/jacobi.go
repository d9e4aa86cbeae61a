// SPDX-License-Identifier: MIT

package pca

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// jacobiEigen computes eigenvalues and eigenvectors of a symmetric matrix via
// classical Jacobi rotations.
// Implementation:
//   - Stage 1: copy S into a flat row-major working buffer A; Q := I.
//   - Stage 2: repeatedly pick (p,q) with the largest |A[p,q]| in i→j order
//     and apply the rotation that zeroes it; accumulate the rotation into Q.
//   - Stage 3: re-scan the off-diagonal; fail if it is still ≥ tol.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix), unordered.
//   - *mat.Dense: Q whose columns are the matching eigenvectors.
//
// Errors:
//   - ErrDecompositionFailed when max off-diagonal ≥ tol after maxRot rotations.
//
// Determinism:
//   - Fixed pivot search and update order produce stable results.
//
// Complexity:
//   - Time O(maxRot * n^2) for the pivot scans, Space O(n^2).
//
// Notes:
//   - If |A[p,q]| ≤ tol the rotation is skipped to avoid numerical blow-ups.
func jacobiEigen(S mat.Symmetric, tol float64, maxRot int) ([]float64, *mat.Dense, error) {
	n := S.SymmetricDim()
	a := make([]float64, n*n)
	q := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			a[i*n+j] = S.At(i, j)
		}
		q[i*n+i] = 1.0
	}

	var (
		iter               int     // rotation counter
		p, r               int     // current pivot indices (row p, column r)
		maxOff, off        float64 // current max |A[p,r]|; temporary
		app, arr, apr      float64 // A[p,p], A[r,r], A[p,r]
		aip, air, qip, qir float64 // temporaries for A[i,p], A[i,r] and Q[i,p], Q[i,r]
		newIP, newIR       float64 // updated values for A[i,p] and A[i,r]
		theta, t, c, s     float64 // rotation parameters
	)
	for iter = 0; iter < maxRot; iter++ {
		// J.1: Find pivot (p,r) maximizing |A[p,r]|.
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(a[i*n+j])
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}

		// J.2: Converged.
		if maxOff < tol {
			break
		}

		// J.3: Rotation parameters from A[p,p], A[r,r], A[p,r].
		app, arr, apr = a[p*n+p], a[r*n+r], a[p*n+r]
		if math.Abs(apr) <= tol {
			continue
		}
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: Apply rotation to A (symmetric updates).
		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip, air = a[i*n+p], a[i*n+r]
			newIP = c*aip - s*air
			newIR = s*aip + c*air
			a[i*n+p], a[p*n+i] = newIP, newIP
			a[i*n+r], a[r*n+i] = newIR, newIR
		}
		a[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a[p*n+r], a[r*n+p] = 0, 0

		// J.5: Accumulate rotation into Q.
		for i = 0; i < n; i++ {
			qip, qir = q[i*n+p], q[i*n+r]
			q[i*n+p] = c*qip - s*qir
			q[i*n+r] = s*qip + c*qir
		}
	}

	// Final convergence check.
	maxOff = 0
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if off = math.Abs(a[i*n+j]); off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, pcaErrorf(opJacobi, ErrDecompositionFailed)
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a[i*n+i]
	}

	return eigs, mat.NewDense(n, n, q), nil
}
