// Package rank resolves a process's rank and world size from the
// environment-variable conventions of common distributed launchers.
//
// Detect understands mpirun (OpenMPI), torchrun, horovod, slurm and
// nccl, plus a general RANK/WORLD_SIZE pair. Explicit values always
// take precedence over the environment, and a missing environment
// falls back to rank 0 of a world of 1 so single-process runs need no
// configuration.
//
// Environment access goes through an injected LookupFunc rather than
// os.Getenv directly, so detection can be tested against a plain map
// without mutating the real process environment.
package rank
