package repository

import (
	"context"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/noah-isme/anycanvas/internal/models"
)

const coursesPath = "/v1/users/self/courses"

// CourseRepository reads courses from the Canvas API.
type CourseRepository struct {
	client *resty.Client
}

// NewCourseRepository instantiates a course repository.
func NewCourseRepository(client *resty.Client) *CourseRepository {
	return &CourseRepository{client: client}
}

// ListForCurrentUser requests the token owner's active courses with their term embedded.
// per_page is omitted when perPage is not positive.
func (r *CourseRepository) ListForCurrentUser(ctx context.Context, perPage int) (*models.APIResponse, error) {
	req := r.client.R().
		SetContext(ctx).
		SetQueryParam("include[]", "term").
		SetQueryParam("enrollment_state", "active")
	if perPage > 0 {
		req.SetQueryParam("per_page", strconv.Itoa(perPage))
	}

	resp, err := req.Get(coursesPath)
	if err != nil {
		return nil, err
	}
	return &models.APIResponse{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}
