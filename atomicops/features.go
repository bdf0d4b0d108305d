// File: atomicops/features.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// CPU atomic capabilities, for diagnostics only. Strategy selection is a
// build decision and never consults these flags.

package atomicops

import "golang.org/x/sys/cpu"

// HardwareFeatures reports the atomic-related CPU features detected at
// startup. Flags for other architectures are present and false.
func HardwareFeatures() map[string]bool {
	return map[string]bool{
		"x86.cx16":  cpu.X86.HasCX16,
		"arm64.lse": cpu.ARM64.HasATOMICS,
	}
}
