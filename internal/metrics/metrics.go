package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Recorder collects quiz session metrics on its own registry.
type Recorder struct {
	registry          *prometheus.Registry
	sessionsStarted   prometheus.Counter
	sessionsCompleted prometheus.Counter
	answersRecorded   prometheus.Counter
	scoreRatio        prometheus.Histogram
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quiz_sessions_started_total",
			Help: "Number of quiz sessions started.",
		}),
		sessionsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quiz_sessions_completed_total",
			Help: "Number of quiz sessions submitted.",
		}),
		answersRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quiz_answers_recorded_total",
			Help: "Number of answers recorded, overwrites included.",
		}),
		scoreRatio: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "quiz_score_ratio",
			Help:    "Share of correct answers in submitted sessions.",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		}),
	}

	r.registry.MustRegister(r.sessionsStarted, r.sessionsCompleted, r.answersRecorded, r.scoreRatio)

	return r
}

func (r *Recorder) SessionStarted() { r.sessionsStarted.Inc() }

func (r *Recorder) AnswerRecorded() { r.answersRecorded.Inc() }

// SessionCompleted counts a submitted session and observes its score.
func (r *Recorder) SessionCompleted(score, total int) {
	r.sessionsCompleted.Inc()
	if total > 0 {
		r.scoreRatio.Observe(float64(score) / float64(total))
	}
}

// Handler exposes the registry in the prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve runs the /metrics endpoint on addr until ctx is cancelled.
func (r *Recorder) Serve(ctx context.Context, addr string, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics endpoint listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
