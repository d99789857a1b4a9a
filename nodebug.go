//go:build !debugNswitch
// +build !debugNswitch

package nswitch

const debugging = false

func debugf(string, ...interface{}) {}
func debug(...interface{})          {}
