package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"fortio.org/cli"
	"fortio.org/log"
	"github.com/Garsondee/breakout/internal/breakout"
	"github.com/Garsondee/breakout/internal/tui"
	"github.com/gdamore/tcell/v2"
)

func main() {
	os.Exit(Main())
}

func Main() int {
	variantFlag := flag.String("variant", "classic", "game variant: classic or assisted")
	fps := flag.Float64("fps", 60, "frames per second")
	seed := flag.Int64("seed", 0, "random `seed` for ball launches, default (0) is time based")
	cli.Main()

	variant, err := breakout.ParseVariant(*variantFlag)
	if err != nil {
		return log.FErrf("%v", err)
	}
	if *fps <= 0 {
		return log.FErrf("-fps must be > 0, got %v", *fps)
	}
	seedV := *seed
	if seedV == 0 {
		seedV = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return log.FErrf("Error creating terminal screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		return log.FErrf("Error initialising terminal: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := tui.NewApp(screen, variant, seedV)
	err = app.Run(ctx, *fps)
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		return log.FErrf("breakout-tui: %v", err)
	}
	log.Infof("Final score %d", app.Machine().State.Score)
	return 0
}
