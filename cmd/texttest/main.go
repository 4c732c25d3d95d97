package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/osse101/GildedRose_Go/internal/catalog"
	"github.com/osse101/GildedRose_Go/internal/gildedrose"
)

const defaultDays = 2

func main() {
	days := flag.Int("days", defaultDays, "Number of days to print, starting at day 0")
	flag.Parse()

	if *days < 0 {
		log.Fatalf("days must not be negative: %d", *days)
	}

	out := bufio.NewWriter(os.Stdout)
	if err := render(out, *days); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	if err := out.Flush(); err != nil {
		log.Fatalf("Failed to flush output: %v", err)
	}
}

// render prints the fixture once per day, aging it between days
func render(w io.Writer, days int) error {
	items := catalog.FixtureItems()
	engine := gildedrose.NewEngine()

	for day := 0; day < days; day++ {
		if _, err := fmt.Fprintf(w, "-------- day %d --------\nname, sellIn, quality\n", day); err != nil {
			return err
		}
		for _, item := range items {
			if _, err := fmt.Fprintln(w, item.String()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		engine.UpdateQuality(items)
	}
	return nil
}
