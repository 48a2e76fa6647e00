//go:build shr3debug
// +build shr3debug

package shr3

// debug enables precondition checks.
const debug = true
