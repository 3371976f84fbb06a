package telemetry

import "fmt"

// Memory is the RAM part of a Sample.
type Memory struct {
	TotalGiB float64 `json:"totalGiB"`
	UsedGiB  float64 `json:"usedGiB"`
	Percent  float64 `json:"percent"`
}

// Sample is one monitor reading. GPU is nil when the host has no readable
// GPU load.
type Sample struct {
	CPU float64  `json:"cpu"`
	GPU *float64 `json:"gpu"`
	RAM Memory   `json:"ram"`
}

// HasGPU reports whether the sample carries a GPU load.
func (s Sample) HasGPU() bool {
	return s.GPU != nil
}

// GPUPercent returns the GPU load, or 0 when absent.
func (s Sample) GPUPercent() float64 {
	if s.GPU == nil {
		return 0
	}
	return *s.GPU
}

// Clone returns a copy that shares no pointers with s.
func (s Sample) Clone() Sample {
	if s.GPU != nil {
		g := *s.GPU
		s.GPU = &g
	}
	return s
}

// MemoryLabel formats used and total memory the way the header shows it.
func (s Sample) MemoryLabel() string {
	return fmt.Sprintf("%.1f / %.1f GB", s.RAM.UsedGiB, s.RAM.TotalGiB)
}
