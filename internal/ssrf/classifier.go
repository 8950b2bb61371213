package ssrf

import (
	"net"

	"github.com/JorgeDuranS/MedicLab/internal/logger"
)

// forbiddenV4CIDRs are the IPv4 ranges that must never be fetch targets.
var forbiddenV4CIDRs = []string{
	"127.0.0.0/8",    // loopback
	"10.0.0.0/8",     // RFC1918 class A
	"172.16.0.0/12",  // RFC1918 class B
	"192.168.0.0/16", // RFC1918 class C
	"169.254.0.0/16", // link-local, incl. cloud metadata 169.254.169.254
	"224.0.0.0/4",    // multicast
	"240.0.0.0/4",    // reserved
	"0.0.0.0/8",      // "this" network
}

// forbiddenV6CIDRs are the IPv6 ranges that must never be fetch targets.
var forbiddenV6CIDRs = []string{
	"::1/128",  // loopback
	"fe80::/10", // link-local
	"fc00::/7",  // unique-local
	"::/128",    // unspecified
	"100::/64",  // discard-only
	"2001:db8::/32", // documentation
}

var forbiddenNets []*net.IPNet

func init() {
	for _, cidr := range append(forbiddenV4CIDRs, forbiddenV6CIDRs...) {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			panic("ssrf: bad builtin CIDR " + cidr)
		}
		forbiddenNets = append(forbiddenNets, network)
	}
}

// Classifier decides whether a resolved address is internal/reserved and
// therefore forbidden as a fetch target.
type Classifier struct {
	allowLoopback bool
}

// NewClassifier creates a Classifier. allowLoopback exempts the exact
// literal 127.0.0.1 for local development; it must stay off in production.
func NewClassifier(allowLoopback bool) *Classifier {
	return &Classifier{allowLoopback: allowLoopback}
}

// IsPrivate reports whether the textual IP is internal/reserved. Malformed
// input is treated as private (fail closed).
func (c *Classifier) IsPrivate(ip string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		logger.Log.Warnw("invalid IP address format", "ip", ip)
		return true
	}

	if c.allowLoopback && parsed.Equal(net.IPv4(127, 0, 0, 1)) {
		return false
	}

	for _, network := range forbiddenNets {
		if network.Contains(parsed) {
			return true
		}
	}
	return false
}
