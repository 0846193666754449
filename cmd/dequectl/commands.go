package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/lucasgdosr/deque/v2"
	"github.com/lucasgdosr/deque/v2/internal/workload"
)

// Script implements subcommands.Command for the "script" command.
type Script struct{}

// Name implements subcommands.Command.Name.
func (*Script) Name() string {
	return "script"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Script) Synopsis() string {
	return "apply a YAML script of operations to a deque of ints"
}

// Usage implements subcommands.Command.Usage.
func (*Script) Usage() string {
	return `script <script.yaml> - run the operations and print the final deque.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (*Script) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*Script) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	log := logger(args)

	s, err := workload.LoadScript(f.Arg(0))
	if err != nil {
		log.WithError(err).Error("loading script")
		return subcommands.ExitFailure
	}

	d := deque.New[int]()
	err = s.Run(d, log)
	fmt.Fprintln(os.Stdout, d)
	if err != nil {
		log.WithError(err).Error("script stopped")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// Soak implements subcommands.Command for the "soak" command.
type Soak struct {
	configPath string
	cfg        workload.Config
}

// Name implements subcommands.Command.Name.
func (*Soak) Name() string {
	return "soak"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Soak) Synopsis() string {
	return "run random operations on deques and check them against a model"
}

// Usage implements subcommands.Command.Usage.
func (*Soak) Usage() string {
	return `soak [flags] - flags override values from -config.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (s *Soak) SetFlags(f *flag.FlagSet) {
	def := workload.DefaultConfig()
	f.StringVar(&s.configPath, "config", "", "YAML config file.")
	f.IntVar(&s.cfg.Workers, "workers", def.Workers, "number of concurrent workers, each with its own deque.")
	f.IntVar(&s.cfg.Ops, "ops", def.Ops, "operations per worker.")
	f.Uint64Var(&s.cfg.Seed, "seed", def.Seed, "random seed.")
	f.IntVar(&s.cfg.MaxLen, "max-len", def.MaxLen, "length at which pops are forced.")
	f.IntVar(&s.cfg.FailEvery, "fail-every", def.FailEvery, "fail every n-th element copy, 0 to disable.")
}

// Execute implements subcommands.Command.Execute.
func (s *Soak) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	log := logger(args)

	cfg := s.cfg
	if s.configPath != "" {
		fileCfg, err := workload.LoadConfig(s.configPath)
		if err != nil {
			log.WithError(err).Error("loading config")
			return subcommands.ExitFailure
		}
		// Flags given on the command line win over the file.
		set := make(map[string]bool)
		f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
		overrides := map[string]func(){
			"workers":    func() { fileCfg.Workers = s.cfg.Workers },
			"ops":        func() { fileCfg.Ops = s.cfg.Ops },
			"seed":       func() { fileCfg.Seed = s.cfg.Seed },
			"max-len":    func() { fileCfg.MaxLen = s.cfg.MaxLen },
			"fail-every": func() { fileCfg.FailEvery = s.cfg.FailEvery },
		}
		for name, apply := range overrides {
			if set[name] {
				apply()
			}
		}
		cfg = fileCfg
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	log.WithFields(logrus.Fields{
		"workers":    cfg.Workers,
		"ops":        cfg.Ops,
		"seed":       cfg.Seed,
		"max_len":    cfg.MaxLen,
		"fail_every": cfg.FailEvery,
	}).Info("soak starting")

	rep, err := workload.Soak(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Error("soak failed")
		return subcommands.ExitFailure
	}
	log.WithFields(logrus.Fields{
		"ops":     rep.Ops,
		"faults":  rep.Faults,
		"max_cap": rep.MaxCap,
	}).Info("soak passed")
	return subcommands.ExitSuccess
}

// Demo implements subcommands.Command for the "demo" command.
type Demo struct{}

// Name implements subcommands.Command.Name.
func (*Demo) Name() string {
	return "demo"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Demo) Synopsis() string {
	return "show when a deque copies and destroys its elements"
}

// Usage implements subcommands.Command.Usage.
func (*Demo) Usage() string {
	return `demo - run with -debug to see every copy and destroy.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (*Demo) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*Demo) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if err := runDemo(logger(args)); err != nil {
		logger(args).WithError(err).Error("demo failed")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
