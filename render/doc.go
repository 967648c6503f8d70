// SPDX-License-Identifier: MIT

// Package render presents matrices, solutions and run reports.
//
// Text output follows the classic console layout:
//
//	/2/1 1/1 5/1\
//	\1/1 -1/1 1/1/
//	The value of the variable 1 is: 2 (2/1).
//
// Reports can also be encoded as JSON or YAML; rationals travel as their
// exact "p/q" text in both.
package render
