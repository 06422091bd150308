package nets

import (
	"context"
	"net"
)

// IsLocalAddr reports whether addr (host or host:port) resolves to a loopback or
// private address. Unresolvable hosts count as remote.
type IsLocalAddr func(ctx context.Context, addr string) bool

func (Module) IsLocalAddr() IsLocalAddr {
	var resolver net.Resolver
	return func(ctx context.Context, addr string) bool {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		if ip := net.ParseIP(host); ip != nil {
			return isLocalIP(ip)
		}
		ips, err := resolver.LookupIP(ctx, "ip", host)
		if err != nil {
			return false
		}
		for _, ip := range ips {
			if isLocalIP(ip) {
				return true
			}
		}
		return false
	}
}

func isLocalIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate()
}
