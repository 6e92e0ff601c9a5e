package app

import "time"

// DefaultUserAgent is sent when no override is configured.
const DefaultUserAgent = "goarticle/1.0 (+https://github.com/hyperifyio/goarticle)"

// DefaultTimeout bounds the single fetch attempt when unconfigured.
const DefaultTimeout = 30 * time.Second

// Config holds runtime configuration for one scraper instance. Output
// format and log verbosity are CLI concerns and stay in cmd.
type Config struct {
	// UserAgent sent with the article request.
	UserAgent string
	// Timeout bounds the single fetch attempt.
	Timeout time.Duration
}
