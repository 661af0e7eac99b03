// Package example shows recorded tests generated from //recorded:test directives.
package example

// Add returns the sum of left and right.
func Add(left, right uint64) uint64 {
	return left + right
}
