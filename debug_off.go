//go:build !shr3debug
// +build !shr3debug

package shr3

const debug = false
