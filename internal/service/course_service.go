package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/anycanvas/internal/dto"
	"github.com/noah-isme/anycanvas/internal/models"
	appErrors "github.com/noah-isme/anycanvas/pkg/errors"
)

type courseRepository interface {
	ListForCurrentUser(ctx context.Context, perPage int) (*models.APIResponse, error)
}

// CourseConfig tunes course retrieval.
type CourseConfig struct {
	PerPage int
}

// CourseService fetches the token owner's courses and selects those in a current term.
type CourseService struct {
	repo      courseRepository
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	cfg       CourseConfig
	now       func() time.Time
}

// NewCourseService creates a new course service instance. metrics may be nil.
func NewCourseService(repo courseRepository, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, cfg CourseConfig) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{
		repo:      repo,
		validator: validate,
		logger:    logger,
		metrics:   metrics,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ListCourses returns every course in the listing. A non-200 status or a single element that
// does not match the course shape fails the whole call.
func (s *CourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	resp, err := s.repo.ListForCurrentUser(ctx, s.cfg.PerPage)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRetrieval.Code, "course listing request failed")
	}
	s.logger.Debug("course listing response", zap.Int("status", resp.StatusCode), zap.ByteString("body", resp.Body))

	if resp.StatusCode != http.StatusOK {
		return nil, appErrors.WithStatus(appErrors.ErrRetrieval, resp.StatusCode, "")
	}

	return s.decodeCourses(resp.Body)
}

func (s *CourseService) decodeCourses(body []byte) ([]models.Course, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "course listing is not a JSON array")
	}
	if items == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "course listing is not a JSON array")
	}

	courses := make([]models.Course, 0, len(items))
	for i, item := range items {
		var payload dto.CourseResponse
		if err := json.Unmarshal(item, &payload); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, fmt.Sprintf("course at index %d is malformed", i))
		}
		if err := s.validator.Struct(payload); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, fmt.Sprintf("course at index %d failed validation", i))
		}
		courses = append(courses, payload.ToModel())
	}
	return courses, nil
}

// FilterCurrent keeps, in input order, the courses whose term contains now.
func (s *CourseService) FilterCurrent(courses []models.Course, now time.Time) ([]models.Course, error) {
	current := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		ok, err := course.Term.IsCurrent(now)
		if err != nil {
			return nil, fmt.Errorf("course %d: %w", course.ID, err)
		}
		s.logger.Debug("term window evaluated",
			zap.Int("course_id", course.ID),
			zap.Int("term_id", course.Term.ID),
			zap.Stringp("start_at", course.Term.StartAt),
			zap.Stringp("end_at", course.Term.EndAt),
			zap.Time("now", now),
			zap.Bool("current", ok),
		)
		if ok {
			current = append(current, course)
		}
	}
	return current, nil
}

// CurrentCourses lists the token owner's courses and keeps those in a current term.
func (s *CourseService) CurrentCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.ListCourses(ctx)
	if err != nil {
		return nil, err
	}

	current, err := s.FilterCurrent(courses, s.now())
	if err != nil {
		return nil, err
	}

	s.metrics.RecordCourses(len(courses), len(current))
	s.logger.Info("collected active courses", zap.Int("fetched", len(courses)), zap.Int("current", len(current)))
	return current, nil
}
