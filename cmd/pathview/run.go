package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/pathview/config"
	"github.com/katalvlaran/pathview/core"
	"github.com/katalvlaran/pathview/dijkstra"
	"github.com/katalvlaran/pathview/display"
	"github.com/katalvlaran/pathview/loader"
	"github.com/katalvlaran/pathview/logging"
	"github.com/katalvlaran/pathview/metrics"
)

const shutdownTimeout = 5 * time.Second

// run is main without the process exit, so tests can drive it.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := parseArgs(args, outW)
	if err != nil || shouldExit {
		return err
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, errW)
	slog.SetDefault(logger)

	format, _ := loader.ParseFormat(cfg.Format)
	loadOpts := []loader.Option{loader.WithFormat(format), loader.WithLogger(logger)}
	if cfg.Lenient {
		loadOpts = append(loadOpts, loader.WithLenient())
	}

	reg := prometheus.NewRegistry()
	q := &querier{cfg: cfg, out: outW, logger: logger, collector: metrics.New(reg)}

	if !cfg.Watch {
		g, err := loader.Load(cfg.Graph, loadOpts...)
		if err != nil {
			return err
		}
		return q.query(g)
	}

	return watch(ctx, cfg, q, reg, loadOpts)
}

// watch answers the query once, then again after every reload, until ctx
// is done.
func watch(ctx context.Context, cfg *config.Config, q *querier, reg *prometheus.Registry, loadOpts []loader.Option) error {
	w, err := loader.NewWatcher(cfg.Graph, loadOpts...)
	if err != nil {
		return err
	}
	if err := q.query(w.Graph()); err != nil {
		return err
	}
	w.OnChange(func(g *core.Graph) {
		if err := q.query(g); err != nil {
			q.logger.Warn("query after reload failed", slog.Any("error", err))
		}
	})
	stopWatch, err := w.Watch()
	if err != nil {
		return err
	}
	defer stopWatch()
	q.logger.Info("watching graph file", slog.String("source", cfg.Graph))

	if cfg.Metrics.Addr != "" {
		srv := &http.Server{Addr: cfg.Metrics.Addr, Handler: metrics.Handler(reg), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				q.logger.Error("metrics server failed", slog.Any("error", err))
			}
		}()
		q.logger.Info("serving metrics", slog.String("addr", cfg.Metrics.Addr))
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	<-ctx.Done()
	q.logger.Info("shutting down")

	return nil
}

// querier answers the configured query against successive graphs.
type querier struct {
	mu        sync.Mutex
	cfg       *config.Config
	out       io.Writer
	logger    *slog.Logger
	collector *metrics.Collector
}

func (q *querier) query(g *core.Graph) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	st := g.Stats()
	q.collector.SetGraphNodes(st.NodeCount)
	q.logger.Info("graph ready",
		slog.String("source", st.Source),
		slog.Int("nodes", st.NodeCount),
		slog.Int("arcs", st.ArcCount),
		slog.Int("dangling_arcs", st.DanglingArcCount))

	p, err := dijkstra.ShortestPath(g, q.cfg.Query.Start, q.cfg.Query.End,
		dijkstra.WithLogger(q.logger), dijkstra.WithRecorder(q.collector))
	if err != nil {
		return err
	}
	if err := dijkstra.Print(q.out, p); err != nil {
		return fmt.Errorf("print path: %w", err)
	}

	if q.cfg.Output.DOT != "" {
		if err := display.WriteFile(q.cfg.Output.DOT, g, p); err != nil {
			return err
		}
		q.logger.Info("dot written", slog.String("file", q.cfg.Output.DOT))
	}

	return nil
}
