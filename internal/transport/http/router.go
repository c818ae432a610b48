package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"velos/pkg/requestcontext"
)

// NewRouter mounts all endpoints. Operator-only routes are wrapped in
// requireOperator; everything else is keyed by candidate ID alone.
func NewRouter(h *Handler, requireOperator func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/token", h.HandleIssueToken)

		r.Route("/verification", func(r chi.Router) {
			r.Post("/submit", h.HandleSubmit)
			r.Route("/{candidateID}", func(r chi.Router) {
				r.Get("/", h.HandleGetRun)
				r.Post("/answers", h.HandleAnswers)
				r.Get("/trust-packet", h.HandleTrustPacket)
				r.Get("/verify", h.HandleVerify)
				r.Get("/history", h.HandleHistory)
				r.With(requireOperator).Post("/abandon", h.HandleAbandon)
			})
		})

		r.With(requireOperator).Get("/admin/stats", h.HandleStats)
	})

	return r
}

// requestID assigns a correlation ID to every request, honoring one supplied
// by an upstream proxy.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-Id")
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", rid)
		ctx := requestcontext.WithRequestID(r.Context(), rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
