package ssrf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_IsPrivate(t *testing.T) {
	tests := []struct {
		name    string
		ip      string
		private bool
	}{
		{name: "loopback", ip: "127.0.0.1", private: true},
		{name: "loopback high", ip: "127.255.255.254", private: true},
		{name: "rfc1918 10/8", ip: "10.1.2.3", private: true},
		{name: "just outside 10/8", ip: "11.0.0.1", private: false},
		{name: "rfc1918 172.16/12 low", ip: "172.16.0.1", private: true},
		{name: "rfc1918 172.16/12 high", ip: "172.31.255.254", private: true},
		{name: "just outside 172.16/12", ip: "172.32.0.1", private: false},
		{name: "rfc1918 192.168/16", ip: "192.168.1.1", private: true},
		{name: "just outside 192.168/16", ip: "192.169.0.1", private: false},
		{name: "link local", ip: "169.254.1.1", private: true},
		{name: "cloud metadata", ip: "169.254.169.254", private: true},
		{name: "multicast", ip: "224.0.0.1", private: true},
		{name: "reserved 240/4", ip: "240.0.0.1", private: true},
		{name: "this network", ip: "0.0.0.0", private: true},
		{name: "public IPv4", ip: "8.8.8.8", private: false},
		{name: "public IPv4 cdn", ip: "151.101.1.140", private: false},
		{name: "IPv6 loopback", ip: "::1", private: true},
		{name: "IPv6 link local", ip: "fe80::1", private: true},
		{name: "IPv6 unique local", ip: "fd00::1", private: true},
		{name: "IPv6 unspecified", ip: "::", private: true},
		{name: "IPv6 documentation", ip: "2001:db8::1", private: true},
		{name: "IPv6 public", ip: "2607:f8b0:4004:800::200e", private: false},
		{name: "malformed fails closed", ip: "not-an-ip", private: true},
		{name: "empty fails closed", ip: "", private: true},
	}

	c := NewClassifier(false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.private, c.IsPrivate(tt.ip))
		})
	}
}

func TestClassifier_AllowLoopback(t *testing.T) {
	c := NewClassifier(true)

	assert.False(t, c.IsPrivate("127.0.0.1"), "exact loopback literal is exempt")
	assert.True(t, c.IsPrivate("127.0.0.2"), "other loopback addresses stay private")
	assert.True(t, c.IsPrivate("::1"), "IPv6 loopback stays private")
	assert.True(t, c.IsPrivate("10.0.0.1"), "exemption does not leak to other ranges")
}
