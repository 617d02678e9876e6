package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Unknown is the sentinel identity used when no client address can be
// resolved. All such callers share a single rate-limit bucket; this is
// advisory rate shaping, not a security boundary.
const Unknown = "unknown"

// GetIP returns the client's IP address from an HTTP request.
// Resolution order:
//  1. X-Forwarded-For (comma-separated list, first valid IP wins)
//  2. X-Real-IP (set by reverse proxies such as Nginx)
//  3. RemoteAddr (direct connection)
//
// Returns Unknown when none of the sources yields a valid address.
func GetIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for ip := range strings.SplitSeq(forwarded, ",") {
			if parsed := parseIP(ip); parsed != "" {
				return parsed
			}
		}
	}

	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		if parsed := parseIP(ip); parsed != "" {
			return parsed
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr may already be a bare IP.
		host = r.RemoteAddr
	}
	if parsed := parseIP(host); parsed != "" {
		return parsed
	}

	return Unknown
}

// parseIP validates and normalizes an IP address string.
// Returns empty string if the IP is invalid.
func parseIP(ipStr string) string {
	ipStr = strings.TrimSpace(ipStr)
	if ipStr == "" {
		return ""
	}

	ip := net.ParseIP(ipStr)
	if ip == nil {
		return ""
	}

	return ip.String()
}
