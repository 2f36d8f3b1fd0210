package ingest

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"placematch/internal/repository"

	"github.com/gocolly/colly/v2"
)

// BoardTarget describes one careers/board page and the CSS selectors needed
// to walk from its listing page into individual postings.
type BoardTarget struct {
	Name               string `json:"name"`
	ListURL            string `json:"list_url"`
	LinkSelector       string `json:"link_selector"`
	TitleSelector      string `json:"title_selector"`
	CompanySelector    string `json:"company_selector"`
	LocationSelector   string `json:"location_selector"`
	DetailBodySelector string `json:"detail_body_selector"`
	SkillSelector      string `json:"skill_selector"`
}

type BoardScraper struct {
	opportunities repository.OpportunityRepository
	logger        *log.Logger
}

func NewBoardScraper(opportunities repository.OpportunityRepository, logger *log.Logger) *BoardScraper {
	if logger == nil {
		logger = log.Default()
	}
	return &BoardScraper{opportunities: opportunities, logger: logger}
}

type listItem struct {
	Link     string
	Title    string
	Location string
}

type detail struct {
	Title       string
	Company     string
	Location    string
	Description string
	Skills      []string
	URL         string
}

// Scrape walks the target's listing page, fetches each posting through the
// worker pool, and upserts the results keyed by source URL.
func (s *BoardScraper) Scrape(ctx context.Context, target BoardTarget, workers int) error {
	if s == nil || s.opportunities == nil {
		return fmt.Errorf("nil scraper/repository")
	}
	if strings.TrimSpace(target.ListURL) == "" || strings.TrimSpace(target.LinkSelector) == "" {
		return fmt.Errorf("target %q missing list_url or link_selector", target.Name)
	}
	if workers <= 0 {
		workers = 4
	}

	items, err := s.scrapeListingPage(ctx, target)
	if err != nil {
		return fmt.Errorf("listing page %s: %w", target.ListURL, err)
	}
	if len(items) == 0 {
		s.logger.Printf("[Ingest] %s: no listings matched %q", target.Name, target.LinkSelector)
		return nil
	}

	pool := NewWorkerPool(workers, workers*2)
	pool.SetRateLimit(3)
	results := pool.Run(ctx)

	for _, it := range items {
		it := it
		pool.Submit(func(ctx context.Context) error {
			d, err := s.scrapeDetailPage(ctx, target, it.Link)
			if err != nil {
				return fmt.Errorf("detail %s: %w", it.Link, err)
			}
			return s.opportunities.Upsert(ctx, repository.OpportunityUpsert{
				ExternalID:     externalIDForURL(it.Link),
				Title:          pickNonEmpty(d.Title, it.Title),
				Description:    d.Description,
				Company:        pickNonEmpty(d.Company, target.Name),
				Location:       pickNonEmpty(d.Location, it.Location),
				SourceURL:      it.Link,
				RequiredSkills: d.Skills,
				PostedAt:       nil,
			})
		})
	}

	pool.Close()

	var failures int
	for res := range results {
		if res.Err != nil {
			failures++
			s.logger.Printf("[Ingest] %s: %v", target.Name, res.Err)
		}
	}
	s.logger.Printf("[Ingest] %s: %d listings, %d failures", target.Name, len(items), failures)
	return nil
}

func (s *BoardScraper) scrapeListingPage(ctx context.Context, target BoardTarget) ([]listItem, error) {
	c := newCollector(target.ListURL)

	items := make([]listItem, 0)
	dedup := map[string]struct{}{}

	c.OnHTML(target.LinkSelector, func(e *colly.HTMLElement) {
		href := strings.TrimSpace(e.Attr("href"))
		if href == "" {
			return
		}
		abs := normalizeURL(e.Request.AbsoluteURL(href))
		if abs == "" {
			return
		}
		if _, ok := dedup[abs]; ok {
			return
		}
		dedup[abs] = struct{}{}

		it := listItem{Link: abs}
		if strings.TrimSpace(target.TitleSelector) != "" {
			it.Title = strings.TrimSpace(e.DOM.Find(target.TitleSelector).Text())
		}
		if strings.TrimSpace(target.LocationSelector) != "" {
			it.Location = strings.TrimSpace(e.DOM.Find(target.LocationSelector).Text())
		}
		items = append(items, it)
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(target.ListURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}
	return items, nil
}

func (s *BoardScraper) scrapeDetailPage(ctx context.Context, target BoardTarget, jobURL string) (detail, error) {
	c := newCollector(jobURL)

	var out detail
	out.URL = jobURL
	var reqErr error

	if strings.TrimSpace(target.TitleSelector) != "" {
		c.OnHTML(target.TitleSelector, func(e *colly.HTMLElement) {
			if out.Title == "" {
				out.Title = strings.TrimSpace(e.Text)
			}
		})
	}
	if strings.TrimSpace(target.CompanySelector) != "" {
		c.OnHTML(target.CompanySelector, func(e *colly.HTMLElement) {
			if out.Company == "" {
				out.Company = strings.TrimSpace(e.Text)
			}
		})
	}
	if strings.TrimSpace(target.LocationSelector) != "" {
		c.OnHTML(target.LocationSelector, func(e *colly.HTMLElement) {
			if out.Location == "" {
				out.Location = strings.TrimSpace(e.Text)
			}
		})
	}
	if strings.TrimSpace(target.DetailBodySelector) != "" {
		c.OnHTML(target.DetailBodySelector, func(e *colly.HTMLElement) {
			out.Description = strings.TrimSpace(e.Text)
		})
	}
	if strings.TrimSpace(target.SkillSelector) != "" {
		c.OnHTML(target.SkillSelector, func(e *colly.HTMLElement) {
			out.Skills = append(out.Skills, strings.TrimSpace(e.Text))
		})
	}

	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return detail{}, ctx.Err()
	}
	if err := c.Visit(jobURL); err != nil {
		return detail{}, err
	}
	c.Wait()
	if reqErr != nil {
		return detail{}, reqErr
	}

	out.Skills = uniqueStrings(out.Skills)
	return out, nil
}

func newCollector(rawURL string) *colly.Collector {
	allowed := hostFromURL(rawURL)
	var c *colly.Collector
	if allowed == "" {
		c = colly.NewCollector()
	} else {
		c = colly.NewCollector(colly.AllowedDomains(allowed))
	}
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, RandomDelay: 850 * time.Millisecond, Delay: 450 * time.Millisecond})

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})
	return c
}

func externalIDForURL(rawURL string) string {
	sum := sha1.Sum([]byte(strings.TrimSpace(rawURL)))
	return hex.EncodeToString(sum[:8])
}
