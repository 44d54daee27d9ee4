// Package cxmat provides the small set of complex dense-matrix operations the
// simulation engines need on top of gonum: LU-based inversion, products, and
// assembly of eigenmode-restricted propagators.
//
// gonum's mat package factorizes general real matrices into complex
// eigenvalues and eigenvectors (mat.Eigen / mat.CDense) but offers no complex
// inverse, so the inversion here follows the classic Doolittle LU with
// partial pivoting and forward/backward substitution, ported to complex128.
// Dimensions in this domain are tiny (≤ 13), so O(n³) with no blocking is the
// right trade.
package cxmat
