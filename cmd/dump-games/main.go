package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"othello/internal/archive"
	"othello/internal/rules"
)

func main() {
	dbPath := flag.String("db", "data/games.db", "Path to SQLite database")
	flag.Parse()

	if _, err := os.Stat(*dbPath); os.IsNotExist(err) {
		log.Fatalf("Database not found at %s", *dbPath)
	}

	store, err := archive.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	games, err := store.List(context.Background())
	if err != nil {
		log.Fatalf("Failed to list games: %v", err)
	}

	for _, g := range games {
		fmt.Printf("Game ID: %s\n", g.ID)
		fmt.Printf("Time: %s - %s\n", g.StartedAt.Format(time.RFC822), g.EndedAt.Format(time.RFC822))
		fmt.Printf("Board: %dx%d\n", g.Size, g.Size)
		fmt.Printf("Black: %s (strength %d) %d\n", g.BlackName, g.BlackStrength, g.BlackScore)
		fmt.Printf("White: %s (strength %d) %d\n", g.WhiteName, g.WhiteStrength, g.WhiteScore)
		fmt.Printf("Winner: %s\n", g.Winner)

		if b, err := rules.DecodeBoard(g.FinalBoard); err == nil {
			for _, row := range b.Materialize() {
				fmt.Println(strings.Join(row, " "))
			}
		} else {
			fmt.Println(g.FinalBoard)
		}

		fmt.Println("Moves:")
		formatted, err := json.MarshalIndent(g.Moves, "", "  ")
		if err != nil {
			log.Fatalf("Failed to format moves of %s: %v", g.ID, err)
		}
		fmt.Println(string(formatted))
		fmt.Println("--------------------------------------------------")
	}

	fmt.Printf("Total games found: %d\n", len(games))
}
