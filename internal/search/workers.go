package search

import "github.com/shirou/gopsutil/v3/cpu"

// WorkerCount resolves cfg.Workers: an explicit positive value is used
// as-is; otherwise it autodetects logical core count via gopsutil and,
// under LimitCPU, takes 80% of that rounded down (minimum 1).
func WorkerCount(cfg Config) (int, error) {
	if cfg.Workers > 0 {
		return cfg.Workers, nil
	}

	logical, err := cpu.Counts(true)
	if err != nil {
		return 0, err
	}
	if !cfg.LimitCPU {
		if logical < 1 {
			return 1, nil
		}
		return logical, nil
	}

	n := logical * 80 / 100
	if n < 1 {
		n = 1
	}
	return n, nil
}
