package rank

import (
	"fmt"
	"os"
	"strconv"
)

// LookupFunc looks up an environment variable by name, reporting
// whether it is present. A nil LookupFunc means os.LookupEnv; tests
// inject a map-backed lookup to stay deterministic.
type LookupFunc func(key string) (string, bool)

// Convention names understood by Detect. Each names a distributed
// launcher whose environment-variable pair carries the process rank
// and the world size.
const (
	MPIRun   = "mpirun"
	TorchRun = "torchrun"
	Horovod  = "horovod"
	Slurm    = "slurm"
	NCCL     = "nccl"
	General  = "general"

	// All probes every convention and takes the first complete pair.
	All = "all"
	// None disables probing entirely.
	None = "none"
)

type envPair struct {
	rankVar  string
	worldVar string
}

var conventions = map[string]envPair{
	MPIRun:   {"OMPI_COMM_WORLD_RANK", "OMPI_COMM_WORLD_SIZE"},
	TorchRun: {"RANK", "WORLD_SIZE"},
	Horovod:  {"HOROVOD_RANK", "HOROVOD_SIZE"},
	Slurm:    {"SLURM_PROCID", "SLURM_NTASKS"},
	NCCL:     {"NCCL_RANK", "NCCL_WORLD_SIZE"},
	General:  {"RANK", "WORLD_SIZE"},
}

// Conventions returns the known convention names, in no particular
// order.
func Conventions() []string {
	names := make([]string, 0, len(conventions))
	for name := range conventions {
		names = append(names, name)
	}
	return names
}

// Detect resolves the process rank and world size.
//
// Explicitly supplied values always win: when both rank and worldSize
// differ from -1 they are returned unchanged without touching the
// environment. Otherwise the environment is probed according to
// convention: All (or the empty string) tries every known convention
// and returns the first pair whose two variables are both present; a
// single convention name probes only that pair. When nothing is found,
// or the convention is unknown (including None), Detect falls back to
// rank 0 in a world of 1.
//
// A variable that is present but does not parse as an integer is a
// hard error, never a silent fallback.
func Detect(rank, worldSize int, convention string, lookup LookupFunc) (int, int, error) {
	if rank != -1 && worldSize != -1 {
		return rank, worldSize, nil
	}

	if lookup == nil {
		lookup = os.LookupEnv
	}

	if convention == All || convention == "" {
		for _, pair := range conventions {
			r, w, found, err := probe(pair, lookup)
			if err != nil {
				return 0, 0, err
			}
			if found {
				return r, w, nil
			}
		}
		return 0, 1, nil
	}

	if pair, ok := conventions[convention]; ok {
		r, w, found, err := probe(pair, lookup)
		if err != nil {
			return 0, 0, err
		}
		if found {
			return r, w, nil
		}
	}

	return 0, 1, nil
}

// probe reads one variable pair. Both variables must be present for a
// match; parse failures surface as errors.
func probe(pair envPair, lookup LookupFunc) (int, int, bool, error) {
	rankValue, ok := lookup(pair.rankVar)
	if !ok {
		return 0, 0, false, nil
	}
	worldValue, ok := lookup(pair.worldVar)
	if !ok {
		return 0, 0, false, nil
	}

	rank, err := strconv.Atoi(rankValue)
	if err != nil {
		return 0, 0, false, fmt.Errorf("parse %s=%q: %w", pair.rankVar, rankValue, err)
	}
	worldSize, err := strconv.Atoi(worldValue)
	if err != nil {
		return 0, 0, false, fmt.Errorf("parse %s=%q: %w", pair.worldVar, worldValue, err)
	}
	return rank, worldSize, true, nil
}
