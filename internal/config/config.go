package config

import (
	"slices"
)

// Config represents plume.yml
type Config struct {
	Site     Site     `mapstructure:"site" yaml:"site" toml:"site"`
	Publish  Publish  `mapstructure:"publish" yaml:"publish" toml:"publish"`
	CDN      CDN      `mapstructure:"cdn" yaml:"cdn" toml:"cdn"`
	Triangle Triangle `mapstructure:"triangle" yaml:"triangle" toml:"triangle"`
}

// Site holds the settings handed to the static-site builder.
type Site struct {
	Author      string `mapstructure:"author" yaml:"author" toml:"author"`
	Name        string `mapstructure:"name" yaml:"name" toml:"name"`
	Subtitle    string `mapstructure:"subtitle" yaml:"subtitle" toml:"subtitle"`
	URL         string `mapstructure:"url" yaml:"url" toml:"url"`
	Timezone    string `mapstructure:"timezone" yaml:"timezone" toml:"timezone"`
	DefaultLang string `mapstructure:"default_lang" yaml:"default_lang" toml:"default_lang"`

	Theme          string `mapstructure:"theme" yaml:"theme" toml:"theme"`
	ColorSchemeCSS string `mapstructure:"color_scheme_css" yaml:"color_scheme_css" toml:"color_scheme_css"`
	HeaderCover    string `mapstructure:"header_cover" yaml:"header_cover" toml:"header_cover"`

	RelativeURLs            bool `mapstructure:"relative_urls" yaml:"relative_urls" toml:"relative_urls"`
	DefaultPagination       int  `mapstructure:"default_pagination" yaml:"default_pagination" toml:"default_pagination"`
	DisplayPagesOnMenu      bool `mapstructure:"display_pages_on_menu" yaml:"display_pages_on_menu" toml:"display_pages_on_menu"`
	DisplayCategoriesOnMenu bool `mapstructure:"display_categories_on_menu" yaml:"display_categories_on_menu" toml:"display_categories_on_menu"`
	UseFolderAsCategory     bool `mapstructure:"use_folder_as_category" yaml:"use_folder_as_category" toml:"use_folder_as_category"`
	DeleteOutputDirectory   bool `mapstructure:"delete_output_directory" yaml:"delete_output_directory" toml:"delete_output_directory"`

	ContentPath  string   `mapstructure:"content_path" yaml:"content_path" toml:"content_path"`
	ArticlePaths []string `mapstructure:"article_paths" yaml:"article_paths" toml:"article_paths"`
	PagePaths    []string `mapstructure:"page_paths" yaml:"page_paths" toml:"page_paths"`
	PluginPaths  []string `mapstructure:"plugin_paths" yaml:"plugin_paths" toml:"plugin_paths"`
	Plugins      []string `mapstructure:"plugins" yaml:"plugins" toml:"plugins"`

	Menu   []Link `mapstructure:"menu" yaml:"menu" toml:"menu"`
	Social []Link `mapstructure:"social" yaml:"social" toml:"social"`

	// StaticPaths are copied to the output without parsing.
	StaticPaths       []string      `mapstructure:"static_paths" yaml:"static_paths" toml:"static_paths"`
	ExtraPathMetadata []PathMapping `mapstructure:"extra_path_metadata" yaml:"extra_path_metadata" toml:"extra_path_metadata"`

	Feeds   Feeds   `mapstructure:"feeds" yaml:"feeds" toml:"feeds"`
	Sitemap Sitemap `mapstructure:"sitemap" yaml:"sitemap" toml:"sitemap"`
	SEO     SEO     `mapstructure:"seo" yaml:"seo" toml:"seo"`
}

// Link is a titled URL used for menu items and social links.
type Link struct {
	Title string `mapstructure:"title" yaml:"title" toml:"title"`
	URL   string `mapstructure:"url" yaml:"url" toml:"url"`
}

// PathMapping moves a static file to a different output path,
// e.g. extra/robots.txt -> robots.txt.
type PathMapping struct {
	Source string `mapstructure:"source" yaml:"source" toml:"source"`
	Path   string `mapstructure:"path" yaml:"path" toml:"path"`
}

// Feeds holds feed output paths. An empty path disables that feed.
type Feeds struct {
	AllAtom         string `mapstructure:"all_atom" yaml:"all_atom" toml:"all_atom"`
	CategoryAtom    string `mapstructure:"category_atom" yaml:"category_atom" toml:"category_atom"`
	TranslationAtom string `mapstructure:"translation_atom" yaml:"translation_atom" toml:"translation_atom"`
	AuthorAtom      string `mapstructure:"author_atom" yaml:"author_atom" toml:"author_atom"`
	AuthorRSS       string `mapstructure:"author_rss" yaml:"author_rss" toml:"author_rss"`
}

// Sitemap configures the sitemap plugin.
type Sitemap struct {
	Format      string      `mapstructure:"format" yaml:"format" toml:"format"`
	Priorities  Priorities  `mapstructure:"priorities" yaml:"priorities" toml:"priorities"`
	ChangeFreqs ChangeFreqs `mapstructure:"changefreqs" yaml:"changefreqs" toml:"changefreqs"`
}

// Priorities are sitemap priorities in [0, 1].
type Priorities struct {
	Articles float64 `mapstructure:"articles" yaml:"articles" toml:"articles"`
	Indexes  float64 `mapstructure:"indexes" yaml:"indexes" toml:"indexes"`
	Pages    float64 `mapstructure:"pages" yaml:"pages" toml:"pages"`
}

// ChangeFreqs are sitemap change frequencies.
type ChangeFreqs struct {
	Articles string `mapstructure:"articles" yaml:"articles" toml:"articles"`
	Indexes  string `mapstructure:"indexes" yaml:"indexes" toml:"indexes"`
	Pages    string `mapstructure:"pages" yaml:"pages" toml:"pages"`
}

// SEO configures the seo plugin.
type SEO struct {
	Report        bool `mapstructure:"report" yaml:"report" toml:"report"`
	Enhancer      bool `mapstructure:"enhancer" yaml:"enhancer" toml:"enhancer"`
	OpenGraph     bool `mapstructure:"open_graph" yaml:"open_graph" toml:"open_graph"`
	TwitterCards  bool `mapstructure:"twitter_cards" yaml:"twitter_cards" toml:"twitter_cards"`
	ArticlesLimit int  `mapstructure:"articles_limit" yaml:"articles_limit" toml:"articles_limit"`
	PagesLimit    int  `mapstructure:"pages_limit" yaml:"pages_limit" toml:"pages_limit"`
}

// Publish overrides Site when building for production.
type Publish struct {
	SiteURL               string `mapstructure:"site_url" yaml:"site_url" toml:"site_url"`
	Feeds                 Feeds  `mapstructure:"feeds" yaml:"feeds" toml:"feeds"`
	DeleteOutputDirectory bool   `mapstructure:"delete_output_directory" yaml:"delete_output_directory" toml:"delete_output_directory"`
}

// CDN identifies the distribution whose cache is invalidated after publishing.
type CDN struct {
	DistributionID string   `mapstructure:"distribution_id" yaml:"distribution_id" toml:"distribution_id"`
	Region         string   `mapstructure:"region" yaml:"region" toml:"region"`
	Paths          []string `mapstructure:"paths" yaml:"paths" toml:"paths"`
}

// Triangle holds defaults for `plume triangle`.
type Triangle struct {
	Rows   int    `mapstructure:"rows" yaml:"rows" toml:"rows"`
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
	Exact  bool   `mapstructure:"exact" yaml:"exact" toml:"exact"`
}

// DefaultRows is the row count used when nothing else is configured.
const DefaultRows = 12

// Default returns a config with sensible defaults
func Default() *Config {
	return &Config{
		Site: Site{
			Author:                  "Your Name",
			Name:                    "My Blog",
			URL:                     "https://example.com",
			Timezone:                "UTC",
			DefaultLang:             "en",
			Theme:                   "theme",
			RelativeURLs:            true,
			DefaultPagination:       6,
			DisplayCategoriesOnMenu: true,
			UseFolderAsCategory:     true,
			ContentPath:             "content",
			ArticlePaths:            []string{"posts"},
			PagePaths:               []string{"pages"},
			PluginPaths:             []string{"plugins"},
			Plugins:                 []string{"render_math", "sitemap", "seo"},
			Menu:                    []Link{},
			Social:                  []Link{},
			StaticPaths:             []string{"images", "extra/robots.txt", "extra/favicon.ico"},
			ExtraPathMetadata: []PathMapping{
				{Source: "extra/robots.txt", Path: "robots.txt"},
				{Source: "extra/favicon.ico", Path: "favicon.ico"},
			},
			Sitemap: Sitemap{
				Format:      "xml",
				Priorities:  Priorities{Articles: 0.8, Indexes: 0.1, Pages: 0.8},
				ChangeFreqs: ChangeFreqs{Articles: "weekly", Indexes: "weekly", Pages: "monthly"},
			},
			SEO: SEO{
				Report:        true,
				Enhancer:      true,
				OpenGraph:     true,
				TwitterCards:  true,
				ArticlesLimit: 50,
				PagesLimit:    50,
			},
		},
		Publish: Publish{
			Feeds: Feeds{
				AllAtom:      "feeds/all.atom.xml",
				CategoryAtom: "feeds/{slug}.atom.xml",
			},
			DeleteOutputDirectory: true,
		},
		CDN: CDN{
			Paths: []string{"/*"},
		},
		Triangle: Triangle{
			Rows:   DefaultRows,
			Format: "text",
		},
	}
}

// ForPublish returns a copy of c with the publish overlay applied: absolute
// URLs, feeds enabled and a clean output directory.
func (c *Config) ForPublish() *Config {
	out := c.clone()

	out.Site.RelativeURLs = false
	if c.Publish.SiteURL != "" {
		out.Site.URL = c.Publish.SiteURL
	}
	out.Site.Feeds = mergeFeeds(c.Site.Feeds, c.Publish.Feeds)
	out.Site.DeleteOutputDirectory = c.Publish.DeleteOutputDirectory

	return out
}

func mergeFeeds(base, overlay Feeds) Feeds {
	pick := func(b, o string) string {
		if o != "" {
			return o
		}
		return b
	}
	return Feeds{
		AllAtom:         pick(base.AllAtom, overlay.AllAtom),
		CategoryAtom:    pick(base.CategoryAtom, overlay.CategoryAtom),
		TranslationAtom: pick(base.TranslationAtom, overlay.TranslationAtom),
		AuthorAtom:      pick(base.AuthorAtom, overlay.AuthorAtom),
		AuthorRSS:       pick(base.AuthorRSS, overlay.AuthorRSS),
	}
}

func (c *Config) clone() *Config {
	out := *c
	out.Site.ArticlePaths = slices.Clone(c.Site.ArticlePaths)
	out.Site.PagePaths = slices.Clone(c.Site.PagePaths)
	out.Site.PluginPaths = slices.Clone(c.Site.PluginPaths)
	out.Site.Plugins = slices.Clone(c.Site.Plugins)
	out.Site.Menu = slices.Clone(c.Site.Menu)
	out.Site.Social = slices.Clone(c.Site.Social)
	out.Site.StaticPaths = slices.Clone(c.Site.StaticPaths)
	out.Site.ExtraPathMetadata = slices.Clone(c.Site.ExtraPathMetadata)
	out.CDN.Paths = slices.Clone(c.CDN.Paths)
	return &out
}
