package container

import "time"

// ThrottlingData stores CPU throttling stats of one running container.
// Not used on Windows.
type ThrottlingData struct {
	// Periods is the number of periods with throttling active.
	Periods uint64 `json:"periods"`
	// ThrottledPeriods is the number of periods when the container hit its
	// throttling limit.
	ThrottledPeriods uint64 `json:"throttled_periods"`
	// ThrottledTime is the aggregate time the container was throttled for
	// in nanoseconds.
	ThrottledTime uint64 `json:"throttled_time"`
}

// CPUUsage stores all CPU stats aggregated since container inception.
type CPUUsage struct {
	// TotalUsage is the total CPU time consumed (in nanoseconds on Linux).
	TotalUsage uint64 `json:"total_usage"`
	// PercpuUsage is the per-core CPU time consumed. Not used on Windows.
	PercpuUsage []uint64 `json:"percpu_usage,omitempty"`
	// UsageInKernelmode is the time spent by tasks of the cgroup in kernel mode.
	UsageInKernelmode uint64 `json:"usage_in_kernelmode"`
	// UsageInUsermode is the time spent by tasks of the cgroup in user mode.
	UsageInUsermode uint64 `json:"usage_in_usermode"`
}

// CPUStats aggregates and wraps all CPU related info of a container.
type CPUStats struct {
	CPUUsage       CPUUsage       `json:"cpu_usage"`
	SystemUsage    uint64         `json:"system_cpu_usage,omitempty"`
	OnlineCPUs     uint32         `json:"online_cpus,omitempty"`
	ThrottlingData ThrottlingData `json:"throttling_data,omitempty"`
}

// MemoryStats aggregates all memory stats since container inception on
// Linux.
type MemoryStats struct {
	// Usage is the current res_counter usage for memory.
	Usage uint64 `json:"usage,omitempty"`
	// MaxUsage is the maximum usage ever recorded.
	MaxUsage uint64 `json:"max_usage,omitempty"`
	// Stats contains all the stats exported via memory.stat.
	Stats map[string]uint64 `json:"stats,omitempty"`
	// Failcnt is the number of times memory usage hit limits.
	Failcnt uint64 `json:"failcnt,omitempty"`
	Limit   uint64 `json:"limit,omitempty"`
}

// BlkioStatEntry is one small entity to store a piece of Blkio stats.
// Not used on Windows.
type BlkioStatEntry struct {
	Major uint64 `json:"major"`
	Minor uint64 `json:"minor"`
	Op    string `json:"op"`
	Value uint64 `json:"value"`
}

// BlkioStats stores all IO service stats for data read and write.
// This is a Linux-specific structure as the differences between expressing
// block I/O on Windows and Linux are sufficiently significant to make
// per-platform structures more efficient.
type BlkioStats struct {
	IoServiceBytesRecursive []BlkioStatEntry `json:"io_service_bytes_recursive"`
	IoServicedRecursive     []BlkioStatEntry `json:"io_serviced_recursive"`
	IoQueuedRecursive       []BlkioStatEntry `json:"io_queue_recursive"`
	IoServiceTimeRecursive  []BlkioStatEntry `json:"io_service_time_recursive"`
	IoWaitTimeRecursive     []BlkioStatEntry `json:"io_wait_time_recursive"`
	IoMergedRecursive       []BlkioStatEntry `json:"io_merged_recursive"`
	IoTimeRecursive         []BlkioStatEntry `json:"io_time_recursive"`
	SectorsRecursive        []BlkioStatEntry `json:"sectors_recursive"`
}

// PidsStats contains the stats of a container's pids.
type PidsStats struct {
	// Current is the number of pids in the cgroup.
	Current uint64 `json:"current,omitempty"`
	// Limit is the hard limit on the number of pids in the cgroup.
	// A "Limit" of 0 means that there is no limit.
	Limit uint64 `json:"limit,omitempty"`
}

// NetworkStats aggregates the network stats of one container.
type NetworkStats struct {
	RxBytes   uint64 `json:"rx_bytes"`
	RxPackets uint64 `json:"rx_packets"`
	RxErrors  uint64 `json:"rx_errors"`
	RxDropped uint64 `json:"rx_dropped"`
	TxBytes   uint64 `json:"tx_bytes"`
	TxPackets uint64 `json:"tx_packets"`
	TxErrors  uint64 `json:"tx_errors"`
	TxDropped uint64 `json:"tx_dropped"`
}

// StatsResponse aggregates all types of stats of one container, as produced
// by the stats endpoint ("GET /containers/{id}/stats").
type StatsResponse struct {
	Name string `json:"name,omitempty"`
	ID   string `json:"id,omitempty"`

	// Read is the date and time at which this sample was collected.
	Read time.Time `json:"read"`
	// PreRead is the date and time at which the previous sample was
	// collected; it is zero if no previous sample was collected.
	PreRead time.Time `json:"preread"`

	PidsStats PidsStats `json:"pids_stats,omitempty"`
	CPUStats  CPUStats  `json:"cpu_stats,omitempty"`
	// PreCPUStats is the CPU statistic of the previous sample.
	PreCPUStats CPUStats    `json:"precpu_stats,omitempty"`
	MemoryStats MemoryStats `json:"memory_stats,omitempty"`
	BlkioStats  BlkioStats  `json:"blkio_stats,omitempty"`

	// Networks maps network-name to the stats for that network.
	Networks map[string]NetworkStats `json:"networks,omitempty"`
}
