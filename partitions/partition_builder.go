package partitions

import (
	"fmt"
	"math"
)

// PartitionStrategy defines how problems are grouped
type PartitionStrategy int

const (
	BlockPartition PartitionStrategy = iota // Consecutive problems
	RoundRobin                              // Distribute cyclically
)

func (s PartitionStrategy) String() string {
	switch s {
	case BlockPartition:
		return "block"
	case RoundRobin:
		return "round-robin"
	default:
		return fmt.Sprintf("PartitionStrategy(%d)", int(s))
	}
}

// PartitionBuilder splits a batch of NumProblems problems into partitions of
// roughly TargetPartitionSize each
type PartitionBuilder struct {
	NumProblems         int
	TargetPartitionSize int
	Strategy            PartitionStrategy
}

// BuildPartitions creates a partition layout for the batch
func (pb *PartitionBuilder) BuildPartitions() (*PartitionLayout, error) {
	if pb.NumProblems < 1 {
		return nil, fmt.Errorf("%w: %d problems", ErrEmptyBatch, pb.NumProblems)
	}
	if pb.TargetPartitionSize < 1 {
		return nil, fmt.Errorf("%w: target partition size %d", ErrInvalidConfig, pb.TargetPartitionSize)
	}

	numPartitions := pb.calculateNumPartitions()
	pToP, err := pb.partitionProblems(numPartitions)
	if err != nil {
		return nil, err
	}
	partitions := pb.createPartitions(pToP, numPartitions)

	kpartMax := calculateKpartMax(partitions)
	for i := range partitions {
		partitions[i].MaxProblems = kpartMax
	}

	layout := &PartitionLayout{
		Partitions:    partitions,
		KpartMax:      kpartMax,
		TotalProblems: pb.NumProblems,
		NumPartitions: numPartitions,
		PToP:          pToP,
	}
	if err := layout.ValidateLayout(); err != nil {
		return nil, fmt.Errorf("invalid partition layout: %w", err)
	}
	return layout, nil
}

func (pb *PartitionBuilder) calculateNumPartitions() int {
	numPartitions := int(math.Ceil(float64(pb.NumProblems) / float64(pb.TargetPartitionSize)))
	if numPartitions < 1 {
		numPartitions = 1
	}
	return numPartitions
}

// partitionProblems assigns problems to partitions
func (pb *PartitionBuilder) partitionProblems(numPartitions int) ([]int, error) {
	pToP := make([]int, pb.NumProblems)

	switch pb.Strategy {
	case BlockPartition:
		perPartition := int(math.Ceil(float64(pb.NumProblems) / float64(numPartitions)))
		for i := range pToP {
			pToP[i] = i / perPartition
			if pToP[i] >= numPartitions {
				pToP[i] = numPartitions - 1
			}
		}
	case RoundRobin:
		for i := range pToP {
			pToP[i] = i % numPartitions
		}
	default:
		return nil, fmt.Errorf("%w: unknown strategy %v", ErrInvalidConfig, pb.Strategy)
	}
	return pToP, nil
}

func (pb *PartitionBuilder) createPartitions(pToP []int, numPartitions int) []Partition {
	partitions := make([]Partition, numPartitions)
	for i := range partitions {
		partitions[i] = Partition{ID: i, Problems: make([]int, 0)}
	}
	for k, part := range pToP {
		partitions[part].Problems = append(partitions[part].Problems, k)
		partitions[part].NumProblems++
	}
	return partitions
}

func calculateKpartMax(partitions []Partition) int {
	kpartMax := 0
	for _, p := range partitions {
		if p.NumProblems > kpartMax {
			kpartMax = p.NumProblems
		}
	}
	return kpartMax
}
