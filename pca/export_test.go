// SPDX-License-Identifier: MIT

package pca

// JacobiEigen exposes the unexported Jacobi kernel to external tests.
var JacobiEigen = jacobiEigen
