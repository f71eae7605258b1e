// minefield replays recorded move scripts against fresh minesweeper fields.
//
// Usage:
//
//	minefield [-c config.json] [-seed N] [-show-mines] script...
//
// Each script runs on its own field; "-" reads a script from stdin.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/game"
	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/script"
	"golang.org/x/sync/errgroup"
)

var (
	log = logrus.New()

	configPath string
	seed       uint64
	showMines  bool
)

func init() {
	const (
		defaultConfigPath = ""
		usage             = "config file path"
	)
	flag.StringVar(&configPath, "config", defaultConfigPath, usage)
	flag.StringVar(&configPath, "c", defaultConfigPath, usage+" (shorthand)")
	flag.Uint64Var(&seed, "seed", 0, "mine placement seed (overrides config, 0 = keep)")
	flag.BoolVar(&showMines, "show-mines", false, "print mine layout after each game")
}

func setupLogging(cfg config.Config) {
	if err := cfg.SetupLogging(log); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	mines.Log = log
	game.Log = log
	script.Log = log
}

func readMoves(path string) ([]script.Move, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return script.Parse(r)
}

type outcome struct {
	path    string
	result  script.Result
	session *game.Session
}

func run(ctx context.Context, cfg config.Config, opts game.Options, i int, path string) (*outcome, error) {
	moves, err := readMoves(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	s, err := game.New(opts, newRand(cfg.Seed, uint64(i)))
	if err != nil {
		return nil, err
	}

	res, err := script.Replay(ctx, s, moves)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.WithFields(res.Fields()).WithField("script", path).Info("script replayed")
	return &outcome{path: path, result: res, session: s}, nil
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	setupLogging(cfg)

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	opts, err := cfg.GameOptions()
	if err != nil {
		log.Fatal(err)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		log.Fatal("no scripts given")
	}

	ctx := mainCtx
	if cfg.Timeout.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(mainCtx, cfg.Timeout.Duration)
		defer cancel()
	}

	outcomes := make([]*outcome, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			o, err := run(gCtx, cfg, opts, i, path)
			outcomes[i] = o
			return err
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("exit reason: %s", err)
	}

	for _, o := range outcomes {
		fmt.Printf("== %s: %s after %d moves, %d flags left\n",
			o.path, o.result.Status, o.result.Moves, o.result.FlagsRemaining)
		fmt.Print(o.session)
		if showMines {
			fmt.Println("mines:", o.session.Mines())
		}
	}
}
