//go:build amd64

package main

import "golang.org/x/sys/cpu"

//go:noescape
func pextHardware(src, mask uint64) uint64

//go:noescape
func pdepHardware(src, mask uint64) uint64

func init() {
	if cpu.X86.HasBMI2 {
		pextFunc = pextHardware
		pdepFunc = pdepHardware
	}
}
