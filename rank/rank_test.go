package rank

import (
	"testing"
)

func mapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDetect_ExplicitValuesWin(t *testing.T) {
	// Environment is populated but must be ignored.
	lookup := mapLookup(map[string]string{
		"RANK": "7", "WORLD_SIZE": "16",
	})

	r, w, err := Detect(3, 8, All, lookup)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if r != 3 || w != 8 {
		t.Errorf("Detect() = (%d, %d), want (3, 8)", r, w)
	}
}

func TestDetect_SingleConvention(t *testing.T) {
	tests := []struct {
		name       string
		convention string
		env        map[string]string
		wantRank   int
		wantWorld  int
	}{
		{"torchrun", TorchRun, map[string]string{"RANK": "2", "WORLD_SIZE": "4"}, 2, 4},
		{"mpirun", MPIRun, map[string]string{"OMPI_COMM_WORLD_RANK": "1", "OMPI_COMM_WORLD_SIZE": "3"}, 1, 3},
		{"horovod", Horovod, map[string]string{"HOROVOD_RANK": "5", "HOROVOD_SIZE": "6"}, 5, 6},
		{"slurm", Slurm, map[string]string{"SLURM_PROCID": "0", "SLURM_NTASKS": "32"}, 0, 32},
		{"nccl", NCCL, map[string]string{"NCCL_RANK": "9", "NCCL_WORLD_SIZE": "10"}, 9, 10},
		{"general", General, map[string]string{"RANK": "2", "WORLD_SIZE": "4"}, 2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, w, err := Detect(-1, -1, tt.convention, mapLookup(tt.env))
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}
			if r != tt.wantRank || w != tt.wantWorld {
				t.Errorf("Detect() = (%d, %d), want (%d, %d)", r, w, tt.wantRank, tt.wantWorld)
			}
		})
	}
}

func TestDetect_NoVariablesDefaults(t *testing.T) {
	r, w, err := Detect(-1, -1, Slurm, mapLookup(nil))
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if r != 0 || w != 1 {
		t.Errorf("Detect() = (%d, %d), want (0, 1)", r, w)
	}
}

func TestDetect_UnknownConventionDefaults(t *testing.T) {
	lookup := mapLookup(map[string]string{"RANK": "2", "WORLD_SIZE": "4"})

	for _, convention := range []string{None, "kubeflow", "bogus"} {
		r, w, err := Detect(-1, -1, convention, lookup)
		if err != nil {
			t.Fatalf("Detect(%q) error = %v", convention, err)
		}
		if r != 0 || w != 1 {
			t.Errorf("Detect(%q) = (%d, %d), want (0, 1)", convention, r, w)
		}
	}
}

func TestDetect_ProbeAll(t *testing.T) {
	// Only the slurm pair is set; All must find it.
	lookup := mapLookup(map[string]string{
		"SLURM_PROCID": "3", "SLURM_NTASKS": "12",
	})

	for _, convention := range []string{All, ""} {
		r, w, err := Detect(-1, -1, convention, lookup)
		if err != nil {
			t.Fatalf("Detect(%q) error = %v", convention, err)
		}
		if r != 3 || w != 12 {
			t.Errorf("Detect(%q) = (%d, %d), want (3, 12)", convention, r, w)
		}
	}
}

func TestDetect_ProbeAllConsistent(t *testing.T) {
	// With a single pair set, repeated probes must agree regardless of
	// map iteration order.
	lookup := mapLookup(map[string]string{
		"HOROVOD_RANK": "1", "HOROVOD_SIZE": "2",
	})

	for i := 0; i < 10; i++ {
		r, w, err := Detect(-1, -1, All, lookup)
		if err != nil {
			t.Fatalf("Detect() error = %v", err)
		}
		if r != 1 || w != 2 {
			t.Fatalf("probe %d: Detect() = (%d, %d), want (1, 2)", i, r, w)
		}
	}
}

func TestDetect_PartialPairIgnored(t *testing.T) {
	// Rank variable present without its world-size companion is not a
	// match.
	lookup := mapLookup(map[string]string{"SLURM_PROCID": "3"})

	r, w, err := Detect(-1, -1, Slurm, lookup)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if r != 0 || w != 1 {
		t.Errorf("Detect() = (%d, %d), want (0, 1)", r, w)
	}
}

func TestDetect_MalformedValueFailsLoudly(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad rank", map[string]string{"RANK": "zero", "WORLD_SIZE": "4"}},
		{"bad world", map[string]string{"RANK": "0", "WORLD_SIZE": "four"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Detect(-1, -1, TorchRun, mapLookup(tt.env)); err == nil {
				t.Error("expected parse error, got nil")
			}
		})
	}
}

func TestDetect_OnlyRankExplicitStillProbes(t *testing.T) {
	// A single explicit value does not satisfy the explicit-wins rule;
	// the environment is consulted.
	lookup := mapLookup(map[string]string{"RANK": "2", "WORLD_SIZE": "4"})

	r, w, err := Detect(5, -1, TorchRun, lookup)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if r != 2 || w != 4 {
		t.Errorf("Detect() = (%d, %d), want (2, 4) from environment", r, w)
	}
}

func TestConventions(t *testing.T) {
	names := Conventions()
	if len(names) != 6 {
		t.Fatalf("Conventions() returned %d names, want 6", len(names))
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		seen[name] = true
	}
	for _, want := range []string{MPIRun, TorchRun, Horovod, Slurm, NCCL, General} {
		if !seen[want] {
			t.Errorf("Conventions() missing %q", want)
		}
	}
}
