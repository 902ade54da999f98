package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/noah-isme/anycanvas/internal/models"
	"github.com/noah-isme/anycanvas/internal/repository"
	"github.com/noah-isme/anycanvas/internal/service"
	"github.com/noah-isme/anycanvas/pkg/canvas"
	"github.com/noah-isme/anycanvas/pkg/config"
	appErrors "github.com/noah-isme/anycanvas/pkg/errors"
	"github.com/noah-isme/anycanvas/pkg/logger"
	"github.com/noah-isme/anycanvas/pkg/requestid"
)

const levelUsage = "Options include: DEBUG, INFO, WARNING, ERROR"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, fatalMessage(err))
		os.Exit(1)
	}
}

// fatalMessage prefixes err with its error code; untyped errors report as internal.
func fatalMessage(err error) string {
	return fmt.Sprintf("anycanvas: [%s] %v", appErrors.CodeOf(err), err)
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("anycanvas", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var level string
	fs.StringVar(&level, "l", "", levelUsage)
	fs.StringVar(&level, "log-level", "", levelUsage)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if level == "" {
		level = cfg.Log.Level
	}

	logr, err := logger.New(cfg, logger.ParseLevel(level))
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logr.Sync() //nolint:errcheck

	runID := requestid.New()
	logr = logr.With(zap.String("run_id", runID))
	ctx = requestid.WithValue(ctx, runID)

	metrics := service.NewMetricsService()
	client, err := canvas.NewClient(cfg.Canvas, logr, metrics)
	if err != nil {
		return err
	}
	logr.Debug("canvas client ready", zap.String("base_url", cfg.Canvas.BaseURL), zap.Int("per_page", cfg.Canvas.PerPage))

	authSvc := service.NewAuthService(repository.NewTokenRepository(client), logr)
	courseSvc := service.NewCourseService(
		repository.NewCourseRepository(client),
		validator.New(),
		logr,
		metrics,
		service.CourseConfig{PerPage: cfg.Canvas.PerPage},
	)

	if err := authSvc.VerifyAccess(ctx); err != nil {
		logr.Error("canvas authentication failed", zap.String("code", appErrors.CodeOf(err)), zap.Error(err))
		return err
	}

	current, err := courseSvc.CurrentCourses(ctx)
	if err != nil {
		logr.Error("course retrieval failed", zap.String("code", appErrors.CodeOf(err)), zap.Error(err))
		return err
	}

	reportCourses(logr, current)

	snapshot := metrics.Snapshot()
	logr.Info("run complete",
		zap.Uint64("requests", snapshot.Requests),
		zap.Uint64("failed_requests", snapshot.FailedRequests),
		zap.Float64("avg_request_ms", snapshot.AvgRequestMs),
		zap.Int("courses_fetched", snapshot.CoursesFetched),
		zap.Int("courses_current", snapshot.CoursesCurrent),
	)
	return nil
}

func reportCourses(logr *zap.Logger, courses []models.Course) {
	for _, c := range courses {
		logr.Info("current course",
			zap.Int("id", c.ID),
			zap.String("name", c.Name),
			zap.String("code", c.CourseCode),
			zap.String("term", c.Term.Name),
			zap.Stringp("term_start", c.Term.StartAt),
			zap.Stringp("term_end", c.Term.EndAt),
		)
	}

	if logr.Core().Enabled(zapcore.DebugLevel) {
		data, err := json.Marshal(courses)
		if err != nil {
			logr.Debug("failed to encode courses", zap.Error(err))
			return
		}
		logr.Debug("current courses", zap.ByteString("courses", data))
	}
}
