// Package seeder scrapes a course listing page into catalog rows.
package seeder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/edu-analytics/courserec/internal/models"
	"github.com/gocolly/colly/v2"
	"github.com/sirupsen/logrus"
)

// Selectors locate courses on the listing page.
type Selectors struct {
	Item        string
	Title       string
	Description string
}

// Scraper turns one listing page into an ordered course list.
type Scraper struct {
	selectors Selectors
	processor *ContentProcessor
	logger    *logrus.Logger
	userAgent string
	timeout   time.Duration
	delay     time.Duration
}

func NewScraper(selectors Selectors, logger *logrus.Logger) *Scraper {
	return &Scraper{
		selectors: selectors,
		processor: NewContentProcessor(),
		logger:    logger,
		userAgent: "CourseRec-Seeder/1.0",
		timeout:   30 * time.Second,
		delay:     time.Second,
	}
}

// Scrape visits url and returns one course per item selector match, numbered from 1
// in page order. Items without a title and repeated titles are skipped.
func (s *Scraper) Scrape(ctx context.Context, url string) ([]models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		courses         []models.Course
		processingError error
		skipped         int
	)

	c := colly.NewCollector(colly.UserAgent(s.userAgent))
	if err := c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 1,
		Delay:       s.delay,
	}); err != nil {
		return nil, fmt.Errorf("invalid limit rule: %w", err)
	}
	c.SetRequestTimeout(s.timeout)

	c.OnHTML(s.selectors.Item, func(e *colly.HTMLElement) {
		title := s.extract(e.DOM, s.selectors.Title)
		if title == "" || s.seen(courses, title) {
			skipped++
			return
		}

		description := ""
		if s.selectors.Description != "" {
			description = s.extract(e.DOM, s.selectors.Description)
		}

		courses = append(courses, models.Course{
			ID:          len(courses) + 1,
			Title:       title,
			Description: description,
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		processingError = err
	})

	if err := c.Visit(url); err != nil {
		return nil, fmt.Errorf("failed to visit page: %w", err)
	}
	c.Wait()

	if processingError != nil {
		return nil, fmt.Errorf("processing error: %w", processingError)
	}
	if len(courses) == 0 {
		return nil, fmt.Errorf("no courses matched %q on %s", s.selectors.Item, url)
	}

	s.logger.WithFields(logrus.Fields{
		"url":     url,
		"courses": len(courses),
		"skipped": skipped,
	}).Info("Course listing scraped")

	for _, course := range courses {
		s.logger.WithFields(logrus.Fields{
			"id":    course.ID,
			"title": course.Title,
			"words": s.processor.CountWords(course.Description),
		}).Debug("Course extracted")
	}

	return courses, nil
}

func (s *Scraper) extract(item *goquery.Selection, selector string) string {
	sel := item.Find(selector).First()
	sel.Find("script, style, .noprint, sup.reference").Remove()
	return s.processor.CleanContent(sel.Text())
}

func (s *Scraper) seen(courses []models.Course, title string) bool {
	for _, c := range courses {
		if s.processor.SameTitle(c.Title, title) {
			return true
		}
	}
	return false
}

// Describe summarises courses for dry runs.
func Describe(courses []models.Course) string {
	var b strings.Builder
	for _, c := range courses {
		fmt.Fprintf(&b, "%d\t%s\t%d chars\n", c.ID, c.Title, len(c.Description))
	}
	return b.String()
}
