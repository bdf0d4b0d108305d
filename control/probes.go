// control/probes.go
// Author: momentics <momentics@gmail.com>
//
// Probe helpers for critsec locks, atomicops counters and build settings.

package control

import (
	"runtime"

	"github.com/momentics/hioload-sync/atomicops"
	"github.com/momentics/hioload-sync/critsec"
)

// RegisterLock exposes the state of l under "lock.<name>.*".
func RegisterLock(dp *DebugProbes, name string, l *critsec.Lock) {
	prefix := "lock." + name
	dp.RegisterProbe(prefix+".held", func() any { return l.Held() })
	dp.RegisterProbe(prefix+".owner", func() any { return l.Owner() })
	if critsec.TrackOwner {
		dp.RegisterProbe(prefix+".owner_thread", func() any { return l.OwnerThread() })
	}
}

// RegisterCounter exposes *p under "counter.<name>".
func RegisterCounter(dp *DebugProbes, name string, p *int64) {
	dp.RegisterProbe("counter."+name, func() any { return atomicops.Get(p) })
}

// RegisterPlatformProbes reports how this binary was built and what the CPU
// offers.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any { return runtime.NumCPU() })
	dp.RegisterProbe("platform.arch", func() any { return runtime.GOOS + "/" + runtime.GOARCH })
	dp.RegisterProbe("critsec.base", func() any { return critsec.BaseKind })
	dp.RegisterProbe("critsec.track_owner", func() any { return critsec.TrackOwner })
	dp.RegisterProbe("atomicops.native", func() any { return atomicops.NativeAtomics })
	dp.RegisterProbe("atomicops.cpu", func() any { return atomicops.HardwareFeatures() })
}
