// SPDX-License-Identifier: MIT

// Package concurrency is a parallel matrix-multiplication engine and a set of
// small concurrency primitives built around it.
//
// Subpackages:
//
//	matrix/    generic dense Matrix, Vector, DotProduct and the serial Multiply
//	parallel/  fixed worker pool computing A×B with one task per output cell
//	metrics/   concurrent counter maps: locked, sharded and atomic
//	echo/      TCP handler answering "+OK\r\n" per read
//	pipeline/  producers feeding one consumer over a shared channel
//
// The parallel product fans tasks out round-robin (index mod N) and collects
// them through per-task completion channels:
//
//	A (2×3) · B (3×2)  →  4 tasks  →  workers 0..N-1  →  C (2×2)
//
// The command in cmd/concurrency runs each demo.
package concurrency
