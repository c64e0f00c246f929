package domain

import (
	"errors"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

var ErrNoHost = errors.New("url has no host")

// Registrable maps a URL to its registrable domain (the eTLD+1):
// "https://api.shop.example.co.uk:8080/x" -> "example.co.uk". Scheme,
// subdomains, port, path, query and fragment are ignored. IP literals and
// hosts the public suffix list has no answer for (e.g. "localhost") fall
// back to the bare host so they still get a stable aggregation key.
func Registrable(rawURL string) (string, error) {
	host := hostOf(rawURL)
	if host == "" {
		return "", ErrNoHost
	}
	if net.ParseIP(host) != nil {
		return host, nil
	}
	d, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host, nil
	}
	return d, nil
}

func hostOf(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err == nil && u.Hostname() != "" {
		return strings.ToLower(u.Hostname())
	}
	// scheme-less input like "example.com/path"
	u, err = url.Parse("http://" + raw)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
