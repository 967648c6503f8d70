// SPDX-License-Identifier: MIT

// Package textio reads and writes augmented systems in a plain,
// whitespace-separated text format:
//
//	# 2x + y = 5
//	# x - y = 1
//	2 1 5
//	1 -1 1
//
// The first data line fixes the number of variables n (its token count minus
// one); exactly n data lines of n+1 tokens must follow in total. Tokens are
// integers or fractions "p/q". Blank lines and everything after '#' are
// ignored.
package textio
