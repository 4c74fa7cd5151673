package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"formdesk/core/config"
	"formdesk/core/logger"
	"formdesk/core/store"
)

// Quick manual check of the file store: seeds a few records through the
// configured path and dumps what LoadAll returns.
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		log.Fatal(err)
	}

	st := store.NewFileStore(cfg.Store.Path, logg)
	ctx := context.Background()

	seeds := []store.Submission{
		store.NewSubmission("Ada Lovelace", "ada@example.com", "", "First!"),
		store.NewSubmission("Grace Hopper", "grace@example.com", "555-0101", ""),
		store.NewSubmission("Linus Torvalds", "linus@example.com", "", "Hello there"),
	}

	for _, sub := range seeds {
		if err := st.AppendOne(ctx, sub); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Appended %s (id=%d)\n", sub.Name, sub.ID)
	}

	subs, err := st.LoadAll(ctx)
	if err != nil {
		log.Fatal(err)
	}

	out, _ := json.MarshalIndent(subs, "", "  ")
	fmt.Println(string(out))
	fmt.Printf("Total: %d\n", len(subs))
}
