package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/introgate/patterns"
)

func main() {
	patternID := flag.String("pattern", "countdown", "intro pattern id (empty for no intro)")
	noIntro := flag.Bool("none", false, "force no intro regardless of -pattern")
	list := flag.Bool("list", false, "list registered patterns and exit")
	watch := flag.Bool("watch", false, "hot-reload pattern definitions from patterns/defs")
	flag.Parse()

	registry := patterns.NewRegistry()
	patterns.RegisterBuiltins(registry)

	if *list {
		for _, m := range registry.Metas() {
			fmt.Printf("%-16s %-10s %s\n", m.ID, m.Category, m.Description)
		}
		return
	}

	id := *patternID
	if *noIntro {
		id = ""
	}

	game := NewGame(registry, id)

	if *watch {
		w, err := patterns.Watch(registry, "patterns/defs")
		if err != nil {
			log.Printf("failed to watch pattern defs: %v", err)
		} else {
			defer w.Close()
			game.watcher = w
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("introgate")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
