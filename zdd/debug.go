// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build debug

package zdd

import (
	"log"
	"os"
)

const debugEnabled = true

func init() {
	log.SetOutput(os.Stderr)
}

func debugf(format string, args ...interface{}) {
	log.Printf(format, args...)
}
