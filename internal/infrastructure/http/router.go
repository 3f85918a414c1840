package http

import (
	"fmt"
	"net"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/retailnet/pos-admin/internal/api"
	"github.com/retailnet/pos-admin/internal/api/handler"
	apimw "github.com/retailnet/pos-admin/internal/api/middleware"
	"github.com/retailnet/pos-admin/internal/infrastructure/http/handlers"

	_ "github.com/retailnet/pos-admin/docs" // Swagger docs
)

const bodyLimit = "1M"

// ServerOptions configures the cross-cutting HTTP concerns.
type ServerOptions struct {
	CORSOrigins []string
	// TrustedProxies lists the CIDR ranges whose X-Forwarded-For is honoured.
	// Without it the client IP is the TCP peer.
	TrustedProxies []string
	Checks         map[string]handlers.Check
}

// NewServer builds the Echo instance with global middleware, probes, metrics
// and API docs. Application routes are added by api.Register.
func NewServer(opts ServerOptions, log zerolog.Logger) (*echo.Echo, error) {
	extractIP, err := clientIPExtractor(opts.TrustedProxies)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.IPExtractor = extractIP
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(apimw.RequestLogger(log))
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "0",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         15552000,
		ReferrerPolicy:     "no-referrer",
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  opts.CORSOrigins,
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, apimw.TokenHeader},
		ExposeHeaders: []string{echo.HeaderContentDisposition},
	}))
	e.Use(echoprometheus.NewMiddleware("posadmin"))

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(opts.Checks)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

// clientIPExtractor never trusts forwarding headers from arbitrary peers; the
// login throttle is keyed on the result.
func clientIPExtractor(trusted []string) (echo.IPExtractor, error) {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect(), nil
	}
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trusted {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", cidr, err)
		}
		opts = append(opts, echo.TrustIPRange(ipNet))
	}
	return echo.ExtractIPFromXFFHeader(opts...), nil
}
