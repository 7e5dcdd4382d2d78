// sokosolve is a Sokoban puzzle solver. It reads level files from a
// directory of screens and runs the push-space A*-style search against
// the requested level.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/herohde/sokosolve/internal/config"
	"github.com/herohde/sokosolve/internal/render"
	"github.com/herohde/sokosolve/pkg/board"
	"github.com/herohde/sokosolve/pkg/level"
	"github.com/herohde/sokosolve/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

var (
	levelsDir          = flag.String("levels", "", "Directory of level files (default from config, or ./screens)")
	budget             = flag.Int("budget", 0, "Node expansion budget (0 uses the config budget; unlimited if that is also 0)")
	disableDeadSquares = flag.Bool("disable-dead-squares", false, "Disable dead-square pruning")
	disableTunnels     = flag.Bool("disable-tunnels", false, "Disable tunnel-push priority boosting")
	noColors           = flag.Bool("no-colors", false, "Disable colorized board rendering")
	showVersion        = flag.Bool("version", false, "Print version and exit")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: sokosolve [options] [level-index]

sokosolve solves a Sokoban level by push-space search and prints the
terminal board, if found.

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *showVersion {
		fmt.Println(version)
		return
	}

	index, err := parseLevelIndex(flag.Args())
	if err != nil {
		flag.Usage()
		logw.Exitf(ctx, "Invalid level index: %v", err)
	}

	cfg := config.Load()
	dir := cfg.LevelsDir
	if *levelsDir != "" {
		dir = *levelsDir
	}
	b := cfg.Budget
	if *budget != 0 {
		b = *budget
	}

	levels, err := level.LoadAll(dir)
	if err != nil {
		logw.Exitf(ctx, "Failed to load levels from %v: %v", dir, err)
	}
	if index < 1 || index > len(levels) {
		logw.Exitf(ctx, "Level index %v out of range: %v levels found in %v", index, len(levels), dir)
	}
	lvl := levels[index-1]

	bd, init, err := board.NewBoard(lvl.Width, lvl.Height, lvl.Tiles)
	if err != nil {
		logw.Exitf(ctx, "Invalid level %v: %v", lvl.Name, err)
	}

	opt := search.Options{
		DisableDeadSquares: *disableDeadSquares || cfg.DisableDeadSquares,
		DisableTunnels:     *disableTunnels || cfg.DisableTunnels,
	}
	if b > 0 {
		opt.Budget = lang.Some(b)
	}

	rc := render.DefaultConfig()
	rc.UseColors = !*noColors

	logw.Infof(ctx, "sokosolve: solving %v (%dx%d, %d boxes)", lvl.Name, bd.Width(), bd.Height(), len(init.Boxes))

	driver := search.NewDriver(bd, opt)
	outcome, result := driver.Solve(ctx, init)

	summary := render.NewSummaryRenderer(rc)
	fmt.Println(summary.Render(lvl.Name, outcome, result))

	if outcome == search.Solved {
		br := render.NewBoardRenderer(rc)
		fmt.Print(br.Render(bd, result.Final))
	}

	if outcome != search.Solved {
		os.Exit(1)
	}
}

// parseLevelIndex reads the single optional positional argument: the
// 1-based level index, defaulting to 1.
func parseLevelIndex(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("expected at most one positional argument, got %d", len(args))
	}
	return strconv.Atoi(args[0])
}
