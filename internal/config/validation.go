package config

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/simonhull/plume/internal/pascal"
	"github.com/simonhull/plume/internal/render"
)

// ValidationError represents a config validation error with context
type ValidationError struct {
	Field      string // Key path (e.g., "site.menu[1].url")
	Message    string
	Suggestion string
}

// Error returns a formatted error message
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Field, e.Message)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(". Suggestion: %s", e.Suggestion)
	}
	return msg
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error returns all validation errors formatted with clear separation
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "found %d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&buf, "  %d. %s\n", i+1, err.Error())
	}
	return buf.String()
}

var changeFreqs = map[string]bool{
	"always": true, "hourly": true, "daily": true, "weekly": true,
	"monthly": true, "yearly": true, "never": true,
}

// Validate checks cfg and returns ValidationErrors listing every problem, or nil.
func Validate(cfg *Config) error {
	var errs ValidationErrors
	add := func(field, msg, suggestion string) {
		errs = append(errs, ValidationError{Field: field, Message: msg, Suggestion: suggestion})
	}

	s := cfg.Site
	if strings.TrimSpace(s.Name) == "" {
		add("site.name", "site name is required", "")
	}
	if strings.TrimSpace(s.Author) == "" {
		add("site.author", "author is required", "")
	}
	if !isAbsoluteURL(s.URL) {
		add("site.url", fmt.Sprintf("invalid site url %q", s.URL), "use an absolute URL like 'https://example.com'")
	}
	if cfg.Publish.SiteURL != "" && !isAbsoluteURL(cfg.Publish.SiteURL) {
		add("publish.site_url", fmt.Sprintf("invalid site url %q", cfg.Publish.SiteURL), "use an absolute URL like 'https://example.com'")
	}
	if s.DefaultPagination <= 0 {
		add("site.default_pagination", "pagination must be positive", "")
	}

	for i, link := range s.Menu {
		if link.Title == "" {
			add(fmt.Sprintf("site.menu[%d].title", i), "menu title is required", "")
		}
		if link.URL == "" {
			add(fmt.Sprintf("site.menu[%d].url", i), "menu url is required", "")
		}
	}
	for i, link := range s.Social {
		if !isAbsoluteURL(link.URL) {
			add(fmt.Sprintf("site.social[%d].url", i), fmt.Sprintf("invalid url %q", link.URL), "social links must be absolute")
		}
	}
	for i, m := range s.ExtraPathMetadata {
		if m.Source == "" || m.Path == "" {
			add(fmt.Sprintf("site.extra_path_metadata[%d]", i), "source and path are both required", "")
		}
	}

	priorities := map[string]float64{
		"articles": s.Sitemap.Priorities.Articles,
		"indexes":  s.Sitemap.Priorities.Indexes,
		"pages":    s.Sitemap.Priorities.Pages,
	}
	freqs := map[string]string{
		"articles": s.Sitemap.ChangeFreqs.Articles,
		"indexes":  s.Sitemap.ChangeFreqs.Indexes,
		"pages":    s.Sitemap.ChangeFreqs.Pages,
	}
	for _, kind := range []string{"articles", "indexes", "pages"} {
		if p := priorities[kind]; p < 0 || p > 1 {
			add("site.sitemap.priorities."+kind, fmt.Sprintf("priority %v out of range", p), "use a value between 0 and 1")
		}
		if f := freqs[kind]; f != "" && !changeFreqs[f] {
			add("site.sitemap.changefreqs."+kind, fmt.Sprintf("unknown change frequency %q", f),
				"use always, hourly, daily, weekly, monthly, yearly or never")
		}
	}

	for i, p := range cfg.CDN.Paths {
		if !strings.HasPrefix(p, "/") {
			add(fmt.Sprintf("cdn.paths[%d]", i), fmt.Sprintf("path %q must start with '/'", p), "use '/*' to invalidate everything")
		}
	}

	if cfg.Triangle.Rows < 0 || cfg.Triangle.Rows > pascal.MaxExactRows {
		add("triangle.rows", fmt.Sprintf("row count %d out of range", cfg.Triangle.Rows),
			fmt.Sprintf("use a value between 0 and %d", pascal.MaxExactRows))
	}
	if _, err := render.ParseFormat(cfg.Triangle.Format); err != nil {
		add("triangle.format", err.Error(), "")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
