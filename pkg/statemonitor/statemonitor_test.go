package statemonitor

import "testing"

func TestGetSnapshot(t *testing.T) {
	snap, err := GetSnapshot()
	if err != nil {
		t.Skipf("resource stats unavailable on this host: %v", err)
	}
	if snap.CPUUsage < 0 || snap.CPUUsage > 100 {
		t.Errorf("cpu usage out of range: %v", snap.CPUUsage)
	}
	if snap.MemoryUsage < 0 || snap.MemoryUsage > 100 {
		t.Errorf("memory usage out of range: %v", snap.MemoryUsage)
	}
}
