package partitions

import (
	"fmt"
)

// Partition is a contiguous or strided slice of a batch of critical-point
// problems that one goroutine solves in sequence
type Partition struct {
	// Unique identifier for this partition
	ID int

	// Problem membership
	Problems    []int // Batch indices of the problems in this partition
	NumProblems int   // Actual number of problems assigned
	MaxProblems int   // KpartMax of the layout this partition belongs to
}

// PartitionLayout is the complete decomposition of a batch
type PartitionLayout struct {
	Partitions []Partition

	// Global sizing information
	KpartMax      int // max(NumProblems) across all partitions
	TotalProblems int // Sum of all problems across partitions
	NumPartitions int

	// Problem to partition mapping
	PToP []int // Length TotalProblems: problem k belongs to partition PToP[k]
}

// GetPartition returns the partition containing problem k, or -1
func (pl *PartitionLayout) GetPartition(problemID int) int {
	if problemID < 0 || problemID >= len(pl.PToP) {
		return -1
	}
	return pl.PToP[problemID]
}

// ValidateLayout checks partition consistency
func (pl *PartitionLayout) ValidateLayout() error {
	actualMax, total := 0, 0
	for _, p := range pl.Partitions {
		if p.NumProblems > actualMax {
			actualMax = p.NumProblems
		}
		if p.MaxProblems != pl.KpartMax {
			return fmt.Errorf("partition %d: MaxProblems %d != KpartMax %d",
				p.ID, p.MaxProblems, pl.KpartMax)
		}
		if p.NumProblems != len(p.Problems) {
			return fmt.Errorf("partition %d: NumProblems %d != %d assigned",
				p.ID, p.NumProblems, len(p.Problems))
		}
		for _, k := range p.Problems {
			if pl.GetPartition(k) != p.ID {
				return fmt.Errorf("partition %d: problem %d mapped to partition %d",
					p.ID, k, pl.GetPartition(k))
			}
		}
		total += p.NumProblems
	}
	if actualMax != pl.KpartMax {
		return fmt.Errorf("computed KpartMax %d != stored KpartMax %d",
			actualMax, pl.KpartMax)
	}
	if total != pl.TotalProblems || len(pl.PToP) != pl.TotalProblems {
		return fmt.Errorf("partitions hold %d problems, layout expects %d", total, pl.TotalProblems)
	}
	return nil
}

// PartitionStats summarizes load balance
type PartitionStats struct {
	NumPartitions int
	MinProblems   int
	MaxProblems   int
	AvgProblems   float64
	Imbalance     float64 // MaxProblems / AvgProblems
}

// PartitionStatistics computes load balance metrics
func (pl *PartitionLayout) PartitionStatistics() PartitionStats {
	stats := PartitionStats{
		NumPartitions: pl.NumPartitions,
		MinProblems:   pl.TotalProblems,
		AvgProblems:   float64(pl.TotalProblems) / float64(pl.NumPartitions),
	}
	for _, p := range pl.Partitions {
		if p.NumProblems < stats.MinProblems {
			stats.MinProblems = p.NumProblems
		}
		if p.NumProblems > stats.MaxProblems {
			stats.MaxProblems = p.NumProblems
		}
	}
	if stats.AvgProblems > 0 {
		stats.Imbalance = float64(stats.MaxProblems) / stats.AvgProblems
	}
	return stats
}
