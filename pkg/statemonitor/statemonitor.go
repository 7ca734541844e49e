package statemonitor

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Snapshot captures client-side resource usage at the moment a submission
// completes. Attached to the diagnostic record for each render.
type Snapshot struct {
	CPUUsage    float64
	MemoryUsage float64
}

func GetSnapshot() (*Snapshot, error) {
	cpuUsages, err := cpu.Percent(0, false)
	if err != nil {
		return nil, err
	}
	var cpuUsage float64
	if len(cpuUsages) > 0 {
		cpuUsage = cpuUsages[0]
	}

	vmStat, err := mem.VirtualMemory()
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		CPUUsage:    cpuUsage,
		MemoryUsage: vmStat.UsedPercent,
	}, nil
}
