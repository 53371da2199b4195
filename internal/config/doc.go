// Package config loads plume.yml.
//
// The file has four sections:
//
//	site:      settings consumed by the static-site builder
//	publish:   overrides applied for production builds (see ForPublish)
//	cdn:       the distribution invalidated after publishing
//	triangle:  defaults for the triangle command
//
// Every key can be overridden from the environment with the PLUME_ prefix and
// dots replaced by underscores, e.g. PLUME_CDN_DISTRIBUTION_ID. A missing
// config file is not an error; Default is used instead.
package config
