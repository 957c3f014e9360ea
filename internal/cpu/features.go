package cpu

import (
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sys/cpu"
)

// Features describes the host CPU as reported by golang.org/x/sys/cpu.
// The transforms are pure Go; the report accompanies benchmark results so
// numbers from different machines can be told apart.
type Features struct {
	HasSSE2      bool
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasFMA       bool
	HasNEON      bool
	Architecture string
	NumCPU       int
}

// DetectFeatures reports the CPU features of the current process.
var DetectFeatures = sync.OnceValue(func() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasFMA:       cpu.X86.HasFMA,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
		NumCPU:       runtime.NumCPU(),
	}
})

// Flags returns the names of the detected features in a fixed order.
func (f Features) Flags() []string {
	var flags []string

	for _, fl := range []struct {
		on   bool
		name string
	}{
		{f.HasSSE2, "sse2"},
		{f.HasAVX, "avx"},
		{f.HasAVX2, "avx2"},
		{f.HasAVX512, "avx512"},
		{f.HasFMA, "fma"},
		{f.HasNEON, "neon"},
	} {
		if fl.on {
			flags = append(flags, fl.name)
		}
	}

	return flags
}

// String formats the features as "arch[flag,flag]".
func (f Features) String() string {
	return f.Architecture + "[" + strings.Join(f.Flags(), ",") + "]"
}
