package orient

import "github.com/cocosip/go-ticket-vision/internal/qranchor"

// homography is a 3x3 planar projective transform, stored row-major.
type homography [9]float64

// solveHomography finds the 3x3 projective transform H such that, for each
// i, H maps from[i] to to[i] (in homogeneous coordinates, up to scale). It
// is the standard four-point-correspondence DLT solve: eight linear
// equations in the eight free parameters of H (h22 is fixed to 1), solved
// by Gaussian elimination with partial pivoting.
//
// No pack dependency exposes a general planar-homography solver (x/image
// and imaging only expose affine resize/rotate), so this is hand-rolled —
// the same way the teacher hand-rolls its own numeric transforms (RCT/ICT
// colorspace matrices, wavelet lifting steps) rather than reaching for a
// linear-algebra package for a fixed small computation.
func solveHomography(from, to [4]qranchor.Point) (homography, bool) {
	var a [8][9]float64
	for i := 0; i < 4; i++ {
		x, y := from[i].X, from[i].Y
		u, v := to[i].X, to[i].Y

		a[2*i] = [9]float64{x, y, 1, 0, 0, 0, -u * x, -u * y, u}
		a[2*i+1] = [9]float64{0, 0, 0, x, y, 1, -v * x, -v * y, v}
	}

	if !gaussianSolve(&a) {
		return homography{}, false
	}

	var h homography
	for i := 0; i < 8; i++ {
		h[i] = a[i][8]
	}
	h[8] = 1
	return h, true
}

// gaussianSolve reduces the augmented 8x8 system in place (columns 0..7 are
// the matrix, column 8 is the right-hand side) via partial-pivot Gaussian
// elimination, leaving the solution in column 8 of each row. Returns false
// if the system is singular (degenerate quad).
func gaussianSolve(a *[8][9]float64) bool {
	const n = 8
	for col := 0; col < n; col++ {
		pivot := col
		best := abs(a[col][col])
		for r := col + 1; r < n; r++ {
			if v := abs(a[r][col]); v > best {
				pivot, best = r, v
			}
		}
		if best < 1e-9 {
			return false
		}
		a[col], a[pivot] = a[pivot], a[col]

		pv := a[col][col]
		for c := col; c < n+1; c++ {
			a[col][c] /= pv
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := a[r][col]
			if factor == 0 {
				continue
			}
			for c := col; c < n+1; c++ {
				a[r][c] -= factor * a[col][c]
			}
		}
	}
	return true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// apply maps (x, y) through h, returning homogeneous-normalized coordinates.
func (h homography) apply(x, y float64) (float64, float64) {
	w := h[6]*x + h[7]*y + h[8]
	if w == 0 {
		return 0, 0
	}
	return (h[0]*x + h[1]*y + h[2]) / w, (h[3]*x + h[4]*y + h[5]) / w
}
