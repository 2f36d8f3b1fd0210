package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"placematch/internal/app"
	"placematch/internal/config"
	"placematch/internal/ingest"
	"placematch/internal/repository"
)

func main() {
	targetsPath := flag.String("targets", "", "path to a JSON file with board targets")
	listURL := flag.String("list_url", "", "single board listing URL")
	linkSelector := flag.String("link_selector", "", "CSS selector for posting links")
	titleSelector := flag.String("title_selector", "", "CSS selector for the posting title")
	bodySelector := flag.String("body_selector", "", "CSS selector for the posting body")
	skillSelector := flag.String("skill_selector", "", "CSS selector for required skill tags")
	boardName := flag.String("name", "board", "board name used as company fallback")
	workers := flag.Int("workers", 4, "detail-page worker count")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	container, err := app.NewContainer(cfg, log.Default())
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = container.Close()
	}()

	targets, err := loadTargets(*targetsPath, ingest.BoardTarget{
		Name:               *boardName,
		ListURL:            *listURL,
		LinkSelector:       *linkSelector,
		TitleSelector:      *titleSelector,
		DetailBodySelector: *bodySelector,
		SkillSelector:      *skillSelector,
	})
	if err != nil {
		log.Fatalf("failed to load targets: %v", err)
	}
	if len(targets) == 0 {
		log.Fatalf("provide -targets or -list_url with -link_selector")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	scraper := ingest.NewBoardScraper(repository.NewPostgresOpportunityRepository(container.DB), container.Logger)
	for _, target := range targets {
		if err := scraper.Scrape(ctx, target, *workers); err != nil {
			log.Printf("ingest %s failed: %v", target.Name, err)
		}
	}
}

func loadTargets(path string, single ingest.BoardTarget) ([]ingest.BoardTarget, error) {
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var targets []ingest.BoardTarget
		if err := json.Unmarshal(b, &targets); err != nil {
			return nil, err
		}
		return targets, nil
	}

	if strings.TrimSpace(single.ListURL) == "" || strings.TrimSpace(single.LinkSelector) == "" {
		return nil, nil
	}
	return []ingest.BoardTarget{single}, nil
}
