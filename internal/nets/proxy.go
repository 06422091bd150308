package nets

import (
	"context"
	"net"
	"net/url"
	"os"
	"sync"

	"github.com/samber/lo"
	"golang.org/x/net/proxy"

	"github.com/vic/lambdaviz/internal/config"
	"github.com/vic/lambdaviz/internal/logs"
)

type ProxyAddr string

func (Module) ProxyAddr(
	settings config.Settings,
	logger logs.Logger,
) (ret ProxyAddr) {
	defer func() {
		if ret != "" {
			logger.Debug("proxy", "addr", ret)
		}
	}()
	return ProxyAddr(lo.CoalesceOrEmpty(
		settings.ProxyAddr,
		os.Getenv("ALL_PROXY"),
		os.Getenv("all_proxy"),
		os.Getenv("HTTP_PROXY"),
		os.Getenv("http_proxy"),
		os.Getenv("SOCKS_PROXY"),
		os.Getenv("socks_proxy"),
	))
}

type GetProxyURL func() (*url.URL, error)

func (Module) GetProxyURL(
	addr ProxyAddr,
) GetProxyURL {
	return sync.OnceValues(func() (*url.URL, error) {
		if addr == "" {
			return nil, nil
		}
		u, err := url.Parse(string(addr))
		if err != nil {
			return nil, err
		}
		if u.Scheme == "socks" {
			u.Scheme = "socks5"
		}
		return u, nil
	})
}

type GetProxyDialer func() (Dialer, error)

func (Module) GetProxyDialer(
	getURL GetProxyURL,
) GetProxyDialer {
	direct := &net.Dialer{}
	return sync.OnceValues(func() (Dialer, error) {
		u, err := getURL()
		if err != nil {
			return nil, err
		}
		if u == nil {
			return direct, nil
		}
		d, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, err
		}
		if cd, ok := d.(Dialer); ok {
			return cd, nil
		}
		return DialerFunc(func(ctx context.Context, network, addr string) (net.Conn, error) {
			return d.Dial(network, addr)
		}), nil
	})
}
