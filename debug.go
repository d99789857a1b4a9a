//go:build debugNswitch
// +build debugNswitch

package nswitch

import (
	"log"
)

var debugging = true

func debugf(fmt string, args ...interface{}) {
	log.Printf("nswitch: "+fmt, args...)
}

func debug(args ...interface{}) {
	log.Println(append([]interface{}{"nswitch:"}, args...)...)
}
