//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified
var Default = Build

// Build compiles the command-line tools into ./bin.
func Build() error {
	mg.Deps(BuildSpectrum, BuildParity, BuildTrace)
	fmt.Println("Compilation finished")
	return nil
}

func BuildSpectrum() error {
	fmt.Println("Building mwdspectrum...")
	return sh.RunV("go", "build", "-o", "./bin/mwdspectrum", "./cmd/mwdspectrum")
}

func BuildParity() error {
	fmt.Println("Building mwdparity...")
	return sh.RunV("go", "build", "-o", "./bin/mwdparity", "./cmd/mwdparity")
}

func BuildTrace() error {
	fmt.Println("Building mwdtrace...")
	return sh.RunV("go", "build", "-o", "./bin/mwdtrace", "./cmd/mwdtrace")
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Bench runs the filter benchmarks.
func Bench() error {
	return sh.RunV("go", "test", "-run", "^$", "-bench", ".", "-benchmem", "./dsp/...", "./measure/...")
}
