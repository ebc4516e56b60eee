package partitions

import (
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/notargets/critpure/critical"
)

// Problem is one independent critical-point calculation
type Problem struct {
	Name        string
	Provider    critical.DerivativeProvider
	T0, Rho0    float64
	Flags       *critical.Flags // nil means critical.DefaultFlags()
	Extrapolate []float64       // temperatures for ExtrapolateFromCritical, optional
}

// Coexistence is one extrapolated (ρL, ρV) pair
type Coexistence struct {
	T, RhoL, RhoV float64
}

// Result is the outcome of one Problem. Err is set when the solve or an
// extrapolation failed; the other problems of the batch are unaffected.
type Result struct {
	Name       string
	Partition  int
	Tc, Rhoc   float64
	Iterations int
	Coexist    []Coexistence
	Err        error
}

// Config controls how a batch is split. Zero values take defaults:
// NumPartitions = GOMAXPROCS, BlockPartition, silent.
type Config struct {
	NumPartitions int
	Strategy      PartitionStrategy
	Logger        *log.Logger
}

// Solve runs every problem in the batch, one goroutine per partition. Results
// are returned in batch order alongside the layout used.
func Solve(problems []Problem, cfg Config) ([]Result, *PartitionLayout, error) {
	if len(problems) == 0 {
		return nil, nil, ErrEmptyBatch
	}
	numPartitions := cfg.NumPartitions
	if numPartitions == 0 {
		numPartitions = runtime.GOMAXPROCS(0)
	}
	if numPartitions < 0 {
		return nil, nil, fmt.Errorf("%w: %d partitions", ErrInvalidConfig, numPartitions)
	}
	if numPartitions > len(problems) {
		numPartitions = len(problems)
	}

	pb := &PartitionBuilder{
		NumProblems:         len(problems),
		TargetPartitionSize: (len(problems) + numPartitions - 1) / numPartitions,
		Strategy:            cfg.Strategy,
	}
	layout, err := pb.BuildPartitions()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Logger != nil {
		stats := layout.PartitionStatistics()
		cfg.Logger.Printf("partitions: %d problems in %d %v partitions, KpartMax = %d, imbalance = %.2f",
			layout.TotalProblems, layout.NumPartitions, cfg.Strategy, layout.KpartMax, stats.Imbalance)
	}

	results := make([]Result, len(problems))
	var wg sync.WaitGroup
	for _, part := range layout.Partitions {
		wg.Add(1)
		go func(part Partition) {
			defer wg.Done()
			// each index is written by exactly one partition
			for _, k := range part.Problems {
				results[k] = solveOne(problems[k], part.ID)
				if cfg.Logger != nil {
					logResult(cfg.Logger, results[k])
				}
			}
		}(part)
	}
	wg.Wait()
	return results, layout, nil
}

func solveOne(p Problem, partID int) Result {
	r := Result{Name: p.Name, Partition: partID}
	if p.Provider == nil {
		r.Err = fmt.Errorf("%w: problem %q has no provider", ErrInvalidConfig, p.Name)
		return r
	}
	sol, err := critical.SolvePureDetailed(p.Provider, p.T0, p.Rho0, p.Flags)
	if err != nil {
		r.Err = fmt.Errorf("problem %q: %w", p.Name, err)
		return r
	}
	r.Tc, r.Rhoc, r.Iterations = sol.T, sol.Rho, sol.Iterations

	for _, T := range p.Extrapolate {
		rhoL, rhoV, err := critical.ExtrapolateFromCritical(p.Provider, r.Tc, r.Rhoc, T)
		if err != nil {
			r.Err = fmt.Errorf("problem %q: %w", p.Name, err)
			return r
		}
		r.Coexist = append(r.Coexist, Coexistence{T: T, RhoL: rhoL, RhoV: rhoV})
	}
	return r
}

func logResult(l *log.Logger, r Result) {
	if r.Err != nil {
		l.Printf("partitions: [%d] %s: %v", r.Partition, r.Name, r.Err)
		return
	}
	l.Printf("partitions: [%d] %s: Tc = %.6f K, rhoc = %.6f mol/m^3 after %d steps",
		r.Partition, r.Name, r.Tc, r.Rhoc, r.Iterations)
}
