package delivery

import (
	"fmt"
	"net"
	"strings"

	domainerrors "brewlog/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// ClientIPExtractor decides what c.RealIP returns, and with it the quota
// identity and rate-limit bucket of anonymous callers.
//
// With no trusted proxies the socket peer address is used and forwarding
// headers are ignored. Otherwise X-Forwarded-For is honoured only through
// hops inside the listed CIDR ranges; loopback and private ranges get no
// implicit trust.
func ClientIPExtractor(trustedProxies []string) (echo.IPExtractor, error) {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect(), nil
	}

	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trustedProxies {
		_, ipNet, err := net.ParseCIDR(strings.TrimSpace(cidr))
		if err != nil {
			return nil, domainerrors.ErrConfiguration.WrapMessage(fmt.Sprintf("http.trustedProxies entry %q is not a CIDR range", cidr))
		}
		options = append(options, echo.TrustIPRange(ipNet))
	}

	return echo.ExtractIPFromXFFHeader(options...), nil
}
