// Binary dequectl drives deques from the command line: it runs scripted
// operations, randomized soak tests, and a demo of element lifetimes.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

var (
	debug     = flag.Bool("debug", false, "enable debug logging.")
	logFormat = flag.String("log-format", "text", "log format: text or json.")
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(new(Script), "")
	subcommands.Register(new(Soak), "")
	subcommands.Register(new(Demo), "")

	// All subcommands must be registered before flag parsing.
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}
	switch *logFormat {
	case "text":
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.Fatalf("invalid log format %q", *logFormat)
	}

	os.Exit(int(subcommands.Execute(context.Background(), log)))
}

// logger extracts the logger passed to subcommands.Execute.
func logger(args []interface{}) *logrus.Logger {
	return args[0].(*logrus.Logger)
}
