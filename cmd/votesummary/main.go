package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/vncsmyrnk/mealpoll/internal/adapters/repository/sqlstore"
	"github.com/vncsmyrnk/mealpoll/internal/config"
	"github.com/vncsmyrnk/mealpoll/internal/core/services"
)

func main() {
	var (
		format string
		recent int
	)

	flag.StringVar(&format, "format", "text", "Output format: text, json or yaml")
	flag.IntVar(&recent, "recent", 0, "Number of recent suggestions to include (defaults to RECENT_SUGGESTIONS_LIMIT)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if recent <= 0 {
		recent = cfg.Poll.RecentSuggestions
	}

	dialect, err := sqlstore.ParseDialect(cfg.Database.Driver)
	if err != nil {
		log.Fatal(err)
	}

	// Use a timeout for the job execution to prevent it from hanging indefinitely
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := sqlstore.Open(ctx, dialect, cfg.Database.URL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize Repositories
	configRepo := sqlstore.NewPollConfigRepository(db, dialect)
	voteRepo := sqlstore.NewVoteRepository(db, dialect)
	suggestionRepo := sqlstore.NewSuggestionRepository(db, dialect)

	// Initialize Service
	summaryService := services.NewSummaryService(configRepo, voteRepo, suggestionRepo, nil)

	summary, err := summaryService.Summarize(ctx, recent)
	if err != nil {
		log.Fatalf("Error summarizing votes: %v", err)
	}

	if err := render(os.Stdout, summary, format); err != nil {
		log.Fatal(err)
	}
}
