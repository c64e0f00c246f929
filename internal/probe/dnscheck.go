package probe

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"
)

// DNS classes used to annotate transport-level probe failures in the log.
const (
	DNSResolves  = "RESOLVES"
	DNSNXDomain  = "NXDOMAIN"
	DNSNoARecord = "NO_A_RECORD"
	DNSServfail  = "SERVFAIL_or_TIMEOUT"
	DNSInvalid   = "INVALID_NAME"
)

var dnsTimeout = 3 * time.Second

// ClassifyDNS resolves host with the OS resolver and returns one of the DNS
// classes above. It is diagnostic only: a probe is already DOWN by the time
// this runs.
func ClassifyDNS(ctx context.Context, host string) string {
	host = strings.TrimSpace(host)
	if host == "" || strings.Contains(host, "://") {
		return DNSInvalid
	}
	if net.ParseIP(host) != nil {
		return DNSResolves
	}

	ctx, cancel := context.WithTimeout(ctx, dnsTimeout)
	defer cancel()
	r := &net.Resolver{} // OS resolver

	ips, err := r.LookupIP(ctx, "ip", host)
	if err == nil && len(ips) > 0 {
		return DNSResolves
	}

	cls := lookupErrorClass(err)
	if cls == DNSNXDomain {
		// The name may still exist with no address records.
		if ns, err := r.LookupNS(ctx, host); err == nil && len(ns) > 0 {
			return DNSNoARecord
		}
	}
	return cls
}

// lookupErrorClass maps a resolver error to a DNS class.
func lookupErrorClass(err error) string {
	var de *net.DNSError
	if errors.As(err, &de) {
		if de.IsTemporary || de.Timeout() {
			return DNSServfail
		}
		if de.IsNotFound {
			return DNSNXDomain
		}
	}
	return DNSServfail
}
