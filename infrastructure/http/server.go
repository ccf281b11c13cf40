package http

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"companysite/frontend/products"
	sessioncontext "companysite/frontend/shared/context"
	"companysite/frontend/site"
	"companysite/infrastructure/cache"
	"companysite/infrastructure/i18n"
	viewsession "companysite/infrastructure/session"
	"companysite/infrastructure/viewstate"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed assets/*
var assets embed.FS

var ShutdownTimeout = 2 * time.Second

// Server bundles dependencies and route wiring.
type Server struct {
	Addr   string
	ln     net.Listener
	server *http.Server
	router *chi.Mux

	Sessions      *cache.ViewSessionCache
	Translator    *i18n.Translator
	Submitter     viewstate.Submitter
	SessionTTL    time.Duration
	PurgeInterval time.Duration

	stopPurge chan struct{}
	purgeWG   sync.WaitGroup
}

// NewServer creates a new http server.
func NewServer(addr string, sessions *cache.ViewSessionCache, translator *i18n.Translator, submitter viewstate.Submitter, sessionTTL, purgeInterval time.Duration) *Server {
	if submitter == nil {
		submitter = viewstate.NopSubmitter{}
	}
	if sessionTTL <= 0 {
		sessionTTL = viewsession.DefaultTTL
	}
	s := &Server{
		Addr:          addr,
		router:        chi.NewRouter(),
		Sessions:      sessions,
		Translator:    translator,
		Submitter:     submitter,
		SessionTTL:    sessionTTL,
		PurgeInterval: purgeInterval,
		server: &http.Server{
			MaxHeaderBytes:    1 << 20,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	// Secure headers first.
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("X-XSS-Protection", "1; mode=block")
			next.ServeHTTP(w, r)
		})
	})

	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Compress(5))
	s.router.Use(s.CSRFMiddleware)
	s.router.Use(s.LabelsMiddleware)

	s.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Serve assets from embedded FS.
	var assetsFS fs.FS = assets
	if sub, err := fs.Sub(assets, "assets"); err == nil {
		assetsFS = sub
	} else {
		slog.Error("assets subfs init failed; serving fallback fs", slog.Any("err", err))
	}
	s.router.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(assetsFS))))

	s.router.Post("/views/close", site.CloseViewCommandHandler(s.Sessions))
	s.router.Get("/products/catalog.pdf", products.CatalogSheetQueryHandler())

	s.router.Group(func(r chi.Router) {
		r.Use(s.ViewSessionMiddleware)
		s.RegisterSiteRoutes(r)
		s.RegisterFormRoutes(r)
	})

	s.server.Handler = s.router
	return s
}

// LabelsMiddleware attaches the labels for the caller's language.
func (s *Server) LabelsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Translator == nil {
			next.ServeHTTP(w, r)
			return
		}
		m := s.Translator.For(r.Header.Get("Accept-Language"))
		next.ServeHTTP(w, r.WithContext(sessioncontext.NewContextWithMessages(r.Context(), m)))
	})
}

// ViewSessionMiddleware attaches the page view named by the v parameter. A
// request without a live view id starts a new page view in its initial state.
func (s *Server) ViewSessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		var view *viewstate.Session
		if id := r.FormValue(viewsession.ViewParam); id != "" {
			if found, ok := s.Sessions.TouchSession(id, now, s.SessionTTL); ok {
				view = found
			} else {
				slog.Debug("page view gone, starting over", slog.String("request_id", middleware.GetReqID(r.Context())))
			}
		}
		if view == nil {
			view = &viewstate.Session{
				ID:         viewsession.NewToken(),
				Controller: viewstate.NewController(s.Submitter),
				ExpiresAt:  viewsession.Expiry(now, s.SessionTTL),
			}
			s.Sessions.AddSession(view)
		}

		next.ServeHTTP(w, r.WithContext(sessioncontext.NewContextWithSession(r.Context(), view)))
	})
}

// Start starts the HTTP server and the expired-session purge loop.
func (s *Server) Start() error {
	var err error
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go s.server.Serve(s.ln)

	if s.PurgeInterval > 0 {
		s.stopPurge = make(chan struct{})
		s.purgeWG.Add(1)
		go s.purgeLoop(s.stopPurge)
	}
	return nil
}

func (s *Server) purgeLoop(stop <-chan struct{}) {
	defer s.purgeWG.Done()
	ticker := time.NewTicker(s.PurgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			if removed := s.Sessions.PurgeExpired(now); removed > 0 {
				slog.Info("purged expired view sessions", slog.Int("removed", removed), slog.Int("live", s.Sessions.Len()))
			}
		}
	}
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.ln == nil {
		return fmt.Errorf("HTTP server has not been started or is already stopped")
	}
	if s.stopPurge != nil {
		close(s.stopPurge)
		s.purgeWG.Wait()
		s.stopPurge = nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %v", err)
	}
	s.ln = nil
	return nil
}

// ListenAddr returns the bound address once Start has succeeded.
func (s *Server) ListenAddr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}
