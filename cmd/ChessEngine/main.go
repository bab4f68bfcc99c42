/*
 * Chess-Engine - a bitboard chess engine core in GO
 *
 * MIT License
 *
 * Copyright (c) 2025 Amit Sarussi
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Amit-Sarussi/Chess-Engine/internal/config"
	"github.com/Amit-Sarussi/Chess-Engine/internal/game"
	"github.com/Amit-Sarussi/Chess-Engine/internal/logging"
	"github.com/Amit-Sarussi/Chess-Engine/internal/movegen"
	"github.com/Amit-Sarussi/Chess-Engine/internal/player"
	"github.com/Amit-Sarussi/Chess-Engine/internal/position"
	"github.com/Amit-Sarussi/Chess-Engine/internal/scorestore"
	"github.com/Amit-Sarussi/Chess-Engine/internal/types"
)

var out = message.NewPrinter(language.English)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", types.StartFen, "fen of the position for perft and board printing")
	perftDepth := flag.Int("perft", 0, "runs perft on the given position to the given depth")
	divideDepth := flag.Int("divide", 0, "runs split perft printing one count per root move")
	parallel := flag.Bool("parallel", false, "split the perft at the root across goroutines")
	selfplay := flag.String("selfplay", "", "plays a game between two players, e.g. random:heuristics\n(random|heuristics|table)")
	storePath := flag.String("store", "", "path of the position score store\noverwrites the configured path")
	printBoard := flag.Bool("board", false, "prints the given position and exits")
	prof := flag.Bool("profile", false, "writes a cpu profile to the working directory")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if *storePath != "" {
		config.Settings.Store.Path = *storePath
	}

	// resetting log level of the standard log - most packages create
	// their logger before main() runs and start with the default level
	log := logging.GetLog()

	if *prof {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	p, err := position.NewPosition(*fen)
	if err != nil {
		log.Errorf("could not parse fen: %s", err)
		os.Exit(1)
	}

	switch {
	case *printBoard:
		out.Printf("%s\n%s\n", p.String(), p.Fen())

	case *divideDepth > 0:
		movegen.PerftDivide(p, *divideDepth)

	case *selfplay != "":
		runSelfplay(*selfplay)

	default:
		depth := *perftDepth
		if depth == 0 {
			depth = config.Settings.Perft.DefaultDepth
		}
		runPerft(p, depth, *parallel)
	}
}

func runPerft(p *position.Position, depth int, parallel bool) {
	for d := 1; d <= depth; d++ {
		start := time.Now()
		var nodes uint64
		if parallel {
			nodes = movegen.PerftParallel(p, d)
		} else {
			nodes = movegen.Perft(p, d)
		}
		elapsed := time.Since(start)
		nps := uint64(float64(nodes) / (float64(elapsed.Nanoseconds()+1) / float64(time.Second.Nanoseconds())))
		out.Printf("Depth %d: %d nodes in %d ms (%d nps)\n", d, nodes, elapsed.Milliseconds(), nps)
	}
}

func runSelfplay(matchup string) {
	log := logging.GetLog()

	parts := strings.SplitN(matchup, ":", 2)
	if len(parts) != 2 {
		log.Errorf("selfplay needs two players separated by a colon, got %q", matchup)
		os.Exit(1)
	}

	var store *scorestore.Store
	needsStore := parts[0] == "table" || parts[1] == "table"
	if needsStore {
		var err error
		if config.Settings.Store.InMemory {
			store, err = scorestore.OpenInMemory()
		} else {
			store, err = scorestore.Open(config.Settings.Store.Path)
		}
		if err != nil {
			log.Errorf("could not open score store: %s", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	seed := time.Now().UnixNano()
	white := makePlayer(parts[0], types.White, seed, store)
	black := makePlayer(parts[1], types.Black, seed+1, store)
	if white == nil || black == nil {
		log.Errorf("unknown player type in %q", matchup)
		os.Exit(1)
	}

	g := game.NewGame(white, black)
	result := g.Play()
	out.Printf("%s vs %s: %s\n", parts[0], parts[1], result)
	out.Printf("%s\n", g.Board().String())

	if store != nil {
		if err := g.SaveTo(store); err != nil {
			log.Errorf("could not save game to score store: %s", err)
		}
	}
}

func makePlayer(name string, c types.Color, seed int64, store *scorestore.Store) player.Player {
	switch name {
	case "random":
		return player.NewRandomPlayer(c, seed)
	case "heuristics":
		return player.NewHeuristicsPlayer(c)
	case "table":
		return player.NewTablePlayer(c, store)
	}
	return nil
}
