package ssrf

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/JorgeDuranS/MedicLab/internal/logger"
)

// Stage identifies the admission gate that rejected a URL.
type Stage string

const (
	StageScheme     Stage = "scheme"
	StageHostname   Stage = "hostname"
	StageWhitelist  Stage = "whitelist"
	StageResolution Stage = "resolution"
	StagePrivateIP  Stage = "private_ip"
	StageExtension  Stage = "extension"
)

// Rejection is the error returned when a URL fails admission. The stage is
// structurally available so callers can log SSRF attempts distinctly from
// ordinary validation failures.
type Rejection struct {
	Stage  Stage
	Reason string
}

func (r *Rejection) Error() string {
	return r.Reason
}

// SSRFAttempt reports whether the rejection indicates a likely SSRF probe
// rather than a benign mistake.
func (r *Rejection) SSRFAttempt() bool {
	return r.Stage == StagePrivateIP
}

func reject(stage Stage, format string, args ...any) *Rejection {
	return &Rejection{Stage: stage, Reason: fmt.Sprintf(format, args...)}
}

// Resolver resolves a hostname to its addresses. *net.Resolver satisfies it;
// tests substitute a fake to pin DNS answers.
type Resolver interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// Config is the immutable admission policy, constructed once at startup.
type Config struct {
	// AllowedDomains are exact-match hostnames. No suffix or subdomain
	// matching: trusted.com.evil.com and evil.com@trusted.com must not pass.
	AllowedDomains []string

	// ExtensionExemptDomains skip the image-extension stage (gravatar-style
	// services serve images from extension-less URLs).
	ExtensionExemptDomains []string

	// AllowedExtensions are the acceptable lowercase path suffixes.
	AllowedExtensions []string

	// AllowLoopback threads the development-only 127.0.0.1 exemption into
	// the classifier.
	AllowLoopback bool
}

// DefaultAllowedExtensions are the image suffixes accepted when the config
// does not override them.
var DefaultAllowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// Validator is the multi-stage admission gate a candidate URL must pass
// before any network fetch is attempted.
type Validator struct {
	cfg        Config
	classifier *Classifier
	resolver   Resolver
}

// NewValidator builds a Validator from the given policy. A nil resolver
// falls back to the system resolver.
func NewValidator(cfg Config, resolver Resolver) *Validator {
	if len(cfg.AllowedExtensions) == 0 {
		cfg.AllowedExtensions = DefaultAllowedExtensions
	}
	if resolver == nil {
		resolver = &net.Resolver{}
	}
	return &Validator{
		cfg:        cfg,
		classifier: NewClassifier(cfg.AllowLoopback),
		resolver:   resolver,
	}
}

// Validate runs the admission stages in order, short-circuiting on the
// first failure. A nil return means the URL may be fetched.
func (v *Validator) Validate(ctx context.Context, rawURL string) *Rejection {
	// 1. Scheme
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return reject(StageScheme, "invalid URL: %v", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return reject(StageScheme, "URL scheme must be http or https")
	}

	// 2. Hostname, lowercased since DNS names are case-insensitive
	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return reject(StageHostname, "invalid URL: no hostname")
	}

	// 3. Domain whitelist, exact match only
	if !contains(v.cfg.AllowedDomains, host) {
		logger.Log.Warnw("domain not in whitelist", "host", host)
		return reject(StageWhitelist, "domain not allowed; allowed domains: %s",
			strings.Join(v.cfg.AllowedDomains, ", "))
	}

	// 4. DNS resolution, fail closed
	resolveCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	addrs, err := v.resolver.LookupIPAddr(resolveCtx, host)
	if err != nil || len(addrs) == 0 {
		logger.Log.Warnw("DNS resolution failed", "host", host, "error", err)
		return reject(StageResolution, "domain cannot be resolved")
	}

	// 5. Private-IP classification over every answer
	for _, addr := range addrs {
		if v.classifier.IsPrivate(addr.IP.String()) {
			logger.Log.Warnw("SSRF attempt detected: URL resolves to private IP",
				"url", rawURL, "host", host, "ip", addr.IP.String())
			return reject(StagePrivateIP, "private or internal addresses are not allowed")
		}
	}

	// 6. Image extension, unless the domain is exempt
	if !contains(v.cfg.ExtensionExemptDomains, host) {
		path := strings.ToLower(parsed.Path)
		ok := false
		for _, ext := range v.cfg.AllowedExtensions {
			if strings.HasSuffix(path, ext) {
				ok = true
				break
			}
		}
		if !ok {
			return reject(StageExtension, "invalid file extension; allowed: %s",
				strings.Join(v.cfg.AllowedExtensions, ", "))
		}
	}

	return nil
}

func contains(set []string, s string) bool {
	for _, item := range set {
		if item == s {
			return true
		}
	}
	return false
}
