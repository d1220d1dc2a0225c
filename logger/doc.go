// Package logger is the public API of ranklog. Most users only need to
// import this package.
//
// A Logger writes timestamped, leveled lines to the console and at
// most one file, and can prefix every line with the process rank in a
// distributed job. Rank and world size come from explicit options or
// from launcher environment variables (mpirun, torchrun, horovod,
// slurm, nccl); see the rank package for the convention table.
//
// The package initializes a default Logger (unfiltered, console-only)
// in init(). The package-level functions Info, Error, Debugf, etc.
// delegate to this default instance, so simple programs can log
// without any setup:
//
//	logger.Info("ready")
//
// For custom configuration, construct an instance:
//
//	log, err := logger.New("train",
//	    logger.WithLevel(logger.InfoLevel),
//	    logger.WithFile("run.log", handler.Append),
//	    logger.WithRankTag(true),
//	    logger.WithAutoDetect(rank.TorchRun),
//	    logger.WithLogRank(0))
//
// Level checks happen before any allocation, so filtered-out messages
// cost only a single integer comparison.
//
// A Logger is not synchronized: it reuses an internal buffer between
// calls, so concurrent use of one instance requires external
// serialization. Processes in a distributed job each hold their own
// instance, which is the intended arrangement.
package logger
