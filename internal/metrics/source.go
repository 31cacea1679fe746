package metrics

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/process"
)

// Source is the OS capability the Provider samples from.
type Source interface {
	// SystemTimes returns OS-wide cumulative CPU counters.
	SystemTimes() (CPUTimes, error)
	// WorkingSet returns the resident memory of the current process in bytes.
	WorkingSet() (uint64, error)
}

// HostSource reads counters from the running machine through gopsutil.
type HostSource struct {
	proc *process.Process
}

// NewHostSource creates a Source for the local machine and current process.
func NewHostSource() *HostSource {
	return &HostSource{}
}

// SystemTimes reports aggregate CPU time. gopsutil splits idle out of system
// time on every platform, so it is folded back into Kernel here.
func (s *HostSource) SystemTimes() (CPUTimes, error) {
	stats, err := cpu.Times(false)
	if err != nil {
		return CPUTimes{}, fmt.Errorf("reading cpu times: %w", err)
	}
	if len(stats) == 0 {
		return CPUTimes{}, fmt.Errorf("reading cpu times: no aggregate entry")
	}

	t := stats[0]
	idle := t.Idle + t.Iowait
	return CPUTimes{
		Kernel: t.System + t.Irq + t.Softirq + t.Steal + idle,
		User:   t.User + t.Nice,
		Idle:   idle,
	}, nil
}

// WorkingSet reports the resident set size of this process, which is the
// working set on Windows.
func (s *HostSource) WorkingSet() (uint64, error) {
	if s.proc == nil {
		p, err := process.NewProcess(int32(os.Getpid()))
		if err != nil {
			return 0, fmt.Errorf("opening current process: %w", err)
		}
		s.proc = p
	}

	info, err := s.proc.MemoryInfo()
	if err != nil {
		return 0, fmt.Errorf("reading process memory: %w", err)
	}
	return info.RSS, nil
}
