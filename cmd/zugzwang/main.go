package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ParkBlake/zugzwang/pkg/engine"
	"github.com/ParkBlake/zugzwang/pkg/engine/uci"
	"github.com/ParkBlake/zugzwang/pkg/eval"
	"github.com/ParkBlake/zugzwang/pkg/search"

	"github.com/seekerror/logw"
)

var (
	depth = flag.Uint("depth", 0, "Default search depth limit (zero for none)")
	hash  = flag.Uint("hash", 16, "Transposition table size in MB (zero disables it)")
	noise = flag.Int("noise", 0, "Evaluation noise in centipawns (zero if deterministic)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: zugzwang [options]

ZUGZWANG is a simple UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	s := search.AlphaBeta{
		Eval: search.Quiescence{
			Eval: eval.Weighted{Noise: eval.NewRandom(*noise, time.Now().UnixNano())},
		},
	}
	e := engine.New(ctx, "zugzwang", "ParkBlake", s, engine.WithOptions(engine.Options{Depth: *depth, Hash: *hash}))

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		driver, out := uci.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
