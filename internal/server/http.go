package server

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"time"

	"shortlink/internal/conf"
	"shortlink/internal/service"
	"shortlink/pkg/problemdetails"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/gorilla/handlers"
)

const defaultHTTPTimeout = 5 * time.Second

const (
	OperationShortenerShorten      = "/shortlink.v1.Shortener/Shorten"
	OperationShortenerListLinks    = "/shortlink.v1.Shortener/ListLinks"
	OperationShortenerListAllLinks = "/shortlink.v1.Shortener/ListAllLinks"
	OperationShortenerDeleteLink   = "/shortlink.v1.Shortener/DeleteLink"
	OperationShortenerHealth       = "/shortlink.v1.Shortener/Health"
	OperationShortenerResolve      = "/shortlink.v1.Shortener/Resolve"
)

// NewHTTPServer new an HTTP server.
func NewHTTPServer(c *conf.Server, shortener *service.ShortenerService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
		),
		http.Filter(corsFilter),
		http.ErrorEncoder(problemErrorEncoder),
	}
	timeout := defaultHTTPTimeout
	if c != nil && c.Http != nil {
		if c.Http.Network != "" {
			opts = append(opts, http.Network(c.Http.Network))
		}
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		timeout = conf.Duration(c.Http.Timeout, defaultHTTPTimeout)
	}
	opts = append(opts, http.Timeout(timeout))

	srv := http.NewServer(opts...)
	registerShortenerHTTPServer(srv, shortener)
	return srv
}

// registerShortenerHTTPServer mounts the routes. The catch-all redirect
// route goes last so fixed paths win.
func registerShortenerHTTPServer(s *http.Server, svc *service.ShortenerService) {
	r := s.Route("/")
	r.POST("/shorten", shortenHandler(svc))
	r.GET("/links", listLinksHandler(svc))
	r.GET("/debug/links", listAllLinksHandler(svc))
	r.DELETE("/links/{code}", deleteLinkHandler(svc))
	r.GET("/health", healthHandler(svc))
	r.GET("/{code}", resolveHandler(svc))
}

func shortenHandler(svc *service.ShortenerService) http.HandlerFunc {
	return func(ctx http.Context) error {
		var body shortenBody
		if err := ctx.Bind(&body); err != nil {
			return err
		}
		in := body.request()
		http.SetOperation(ctx, OperationShortenerShorten)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return svc.Shorten(ctx, req.(*service.ShortenRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.JSON(nethttp.StatusCreated, out)
	}
}

// shortenBody accepts any JSON type for url and ttl so a wrongly typed
// field fails validation like a missing one.
type shortenBody struct {
	URL interface{} `json:"url"`
	TTL interface{} `json:"ttl"`
}

func (b shortenBody) request() service.ShortenRequest {
	str := func(v interface{}) string {
		s, _ := v.(string)
		return s
	}
	return service.ShortenRequest{URL: str(b.URL), TTL: str(b.TTL)}
}

func listLinksHandler(svc *service.ShortenerService) http.HandlerFunc {
	return func(ctx http.Context) error {
		http.SetOperation(ctx, OperationShortenerListLinks)
		h := ctx.Middleware(func(ctx context.Context, _ interface{}) (interface{}, error) {
			return svc.ListLinks(ctx)
		})
		out, err := h(ctx, nil)
		if err != nil {
			return err
		}
		return ctx.JSON(nethttp.StatusOK, out)
	}
}

func listAllLinksHandler(svc *service.ShortenerService) http.HandlerFunc {
	return func(ctx http.Context) error {
		http.SetOperation(ctx, OperationShortenerListAllLinks)
		h := ctx.Middleware(func(ctx context.Context, _ interface{}) (interface{}, error) {
			return svc.ListAllLinks(ctx)
		})
		out, err := h(ctx, nil)
		if err != nil {
			return err
		}
		return ctx.JSON(nethttp.StatusOK, out)
	}
}

func deleteLinkHandler(svc *service.ShortenerService) http.HandlerFunc {
	return func(ctx http.Context) error {
		code := ctx.Vars().Get("code")
		http.SetOperation(ctx, OperationShortenerDeleteLink)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return svc.DeleteLink(ctx, req.(string))
		})
		out, err := h(ctx, code)
		if err != nil {
			return err
		}
		return ctx.JSON(nethttp.StatusOK, out)
	}
}

func healthHandler(svc *service.ShortenerService) http.HandlerFunc {
	return func(ctx http.Context) error {
		http.SetOperation(ctx, OperationShortenerHealth)
		h := ctx.Middleware(func(ctx context.Context, _ interface{}) (interface{}, error) {
			return svc.Health(ctx)
		})
		out, err := h(ctx, nil)
		if err != nil {
			return err
		}
		return ctx.JSON(nethttp.StatusOK, out)
	}
}

func resolveHandler(svc *service.ShortenerService) http.HandlerFunc {
	return func(ctx http.Context) error {
		code := ctx.Vars().Get("code")
		http.SetOperation(ctx, OperationShortenerResolve)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return svc.Resolve(ctx, req.(string))
		})
		out, err := h(ctx, code)
		if err != nil {
			return err
		}
		nethttp.Redirect(ctx.Response(), ctx.Request(), out.(string), nethttp.StatusFound)
		return nil
	}
}

// problemErrorEncoder renders errors as RFC 7807 problem details.
func problemErrorEncoder(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	se := errors.FromError(err)
	status := int(se.Code)
	if status < nethttp.StatusBadRequest || status > 599 {
		status = nethttp.StatusInternalServerError
	}
	detail := se.Message
	if se.Reason == "" && status == nethttp.StatusInternalServerError {
		// Not produced by the service layer; do not echo the cause.
		detail = nethttp.StatusText(status)
	}

	problem := problemdetails.New(status, problemdetails.TypeFromReason(se.Reason), "", detail).
		WithInstance(r.URL.Path).
		WithMetadata(se.Metadata)
	body, err := json.Marshal(problem)
	if err != nil {
		w.WriteHeader(nethttp.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", problemdetails.ContentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// corsFilter allows any origin and answers preflight requests itself.
var corsFilter = handlers.CORS(
	handlers.AllowedOrigins([]string{"*"}),
	handlers.AllowedMethods([]string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodDelete, nethttp.MethodOptions}),
	handlers.AllowedHeaders([]string{"Content-Type"}),
	handlers.OptionStatusCode(nethttp.StatusNoContent),
	handlers.MaxAge(600),
)
