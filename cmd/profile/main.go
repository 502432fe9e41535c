// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

//go:build profile

// Command profile runs performance profiling on estimator workloads.
//
// Usage:
//
//	go build -tags profile -o profile ./cmd/profile
//	./profile -cpu=cpu.prof -mem=mem.prof -iterations=100
//
// Analyze profiles:
//
//	go tool pprof -http=:8080 cpu.prof
//	go tool pprof -http=:8081 mem.prof
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/luxfi/lwe"
)

var (
	cpuProfile = flag.String("cpu", "", "write cpu profile to file")
	memProfile = flag.String("mem", "", "write memory profile to file")
	iterations = flag.Int("iterations", 100, "number of iterations for each workload")
	operation  = flag.String("op", "all", "workload to profile: all, delta, estimate, sweep")
)

func main() {
	flag.Parse()

	// Configure profiling
	config := lwe.ProfileConfig{
		CPUProfile: *cpuProfile,
		MemProfile: *memProfile,
	}

	profiler := lwe.NewProfiler(config)
	if err := profiler.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start profiler: %v\n", err)
		os.Exit(1)
	}
	defer profiler.Stop()

	// Run profiling workload
	fmt.Printf("Running %d iterations of '%s'\n", *iterations, *operation)
	fmt.Printf("GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))

	switch *operation {
	case "all":
		profileAll()
	case "delta":
		profileDelta()
	case "estimate":
		profileEstimate()
	case "sweep":
		profileSweep()
	default:
		fmt.Fprintf(os.Stderr, "Unknown workload: %s\n", *operation)
		os.Exit(1)
	}

	lwe.PrintMemStats()
}

func profileAll() {
	profileDelta()
	profileEstimate()
	profileSweep()
}

func profileDelta() {
	fmt.Println("\n=== Block Size Conversions ===")

	timer := lwe.NewTimer("DeltaBKZ full range")
	for i := 0; i < *iterations; i++ {
		for beta := 2; beta < lwe.BetaInfinite; beta++ {
			lwe.DeltaBKZ(beta)
		}
	}
	d := timer.Stop()
	fmt.Printf("  Average: %v/op\n", d/time.Duration(*iterations))

	timer = lwe.NewTimer("BetaForDelta round trips")
	for i := 0; i < *iterations; i++ {
		for beta := 53; beta < 2000; beta++ {
			lwe.BetaForDelta(lwe.DeltaBKZ(beta))
		}
	}
	d = timer.Stop()
	fmt.Printf("  Average: %v/op\n", d/time.Duration(*iterations))
}

func profileEstimate() {
	fmt.Println("\n=== Single Estimates ===")

	for _, ps := range lwe.AllParameterSets() {
		params, err := lwe.NewParametersFromLiteral(ps.Params)
		if err != nil {
			panic(err)
		}

		timer := lwe.NewTimer(ps.Name)
		for i := 0; i < *iterations; i++ {
			lwe.Estimate(params, lwe.CoreSVP)
		}
		d := timer.Stop()
		fmt.Printf("  Average: %v/op\n", d/time.Duration(*iterations))
	}
}

func profileSweep() {
	fmt.Println("\n=== Batched Sweep ===")

	var lits []lwe.ParametersLiteral
	for n := 64; n <= 1024; n += 32 {
		lits = append(lits, lwe.ParametersLiteral{N: n, Q: 12289, Sigma: 10.0})
	}

	timer := lwe.NewTimer(fmt.Sprintf("EstimateBatch (%d sets)", len(lits)))
	for i := 0; i < *iterations; i++ {
		if _, err := lwe.EstimateBatch(lits, lwe.CoreSVP); err != nil {
			panic(err)
		}
	}
	d := timer.Stop()
	fmt.Printf("  Average: %v/op\n", d/time.Duration(*iterations))
}
