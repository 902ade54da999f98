package dto

import "github.com/noah-isme/anycanvas/internal/models"

// TermResponse is the term object Canvas embeds with include[]=term. Required fields are pointers
// so a missing key is distinguishable from a zero value.
type TermResponse struct {
	ID                   *int    `json:"id" validate:"required"`
	Name                 *string `json:"name" validate:"required"`
	StartAt              *string `json:"start_at"`
	EndAt                *string `json:"end_at"`
	WorkflowState        *string `json:"workflow_state" validate:"required"`
	GradingPeriodGroupID *string `json:"grading_period_group_id"`
	CreatedAt            *string `json:"created_at" validate:"required"`
}

// EnrollmentResponse is one entry of a course's enrollments array.
type EnrollmentResponse struct {
	Type                           *string `json:"type" validate:"required"`
	Role                           *string `json:"role" validate:"required"`
	RoleID                         *int    `json:"role_id" validate:"required"`
	UserID                         *int    `json:"user_id" validate:"required"`
	EnrollmentState                *string `json:"enrollment_state" validate:"required"`
	LimitPrivilegesToCourseSection *bool   `json:"limit_privileges_to_course_section" validate:"required"`
}

// CalendarResponse is the calendar object of a course.
type CalendarResponse struct {
	ICS *string `json:"ics" validate:"required"`
}

// CourseResponse is one element of GET /v1/users/self/courses.
type CourseResponse struct {
	ID                               *int                 `json:"id" validate:"required"`
	Name                             *string              `json:"name" validate:"required"`
	CourseCode                       *string              `json:"course_code" validate:"required"`
	AccountID                        *int                 `json:"account_id" validate:"required"`
	CreatedAt                        *string              `json:"created_at" validate:"required"`
	StartAt                          *string              `json:"start_at"`
	DefaultView                      *string              `json:"default_view" validate:"required"`
	EnrollmentTermID                 *int                 `json:"enrollment_term_id" validate:"required"`
	IsPublic                         *bool                `json:"is_public" validate:"required"`
	GradingStandardID                *int                 `json:"grading_standard_id"`
	RootAccountID                    *int                 `json:"root_account_id" validate:"required"`
	UUID                             *string              `json:"uuid" validate:"required"`
	License                          *string              `json:"license" validate:"required"`
	GradePassbackSettings            *string              `json:"grade_passback_settings"`
	EndAt                            *string              `json:"end_at"`
	PublicSyllabus                   *bool                `json:"public_syllabus" validate:"required"`
	PublicSyllabusToAuth             *bool                `json:"public_syllabus_to_auth" validate:"required"`
	StorageQuotaMB                   *int                 `json:"storage_quota_mb" validate:"required"`
	IsPublicToAuthUsers              *bool                `json:"is_public_to_auth_users" validate:"required"`
	HomeroomCourse                   *bool                `json:"homeroom_course" validate:"required"`
	CourseColor                      *string              `json:"course_color"`
	FriendlyName                     *string              `json:"friendly_name"`
	Term                             *TermResponse        `json:"term" validate:"required"`
	ApplyAssignmentGroupWeights      *bool                `json:"apply_assignment_group_weights" validate:"required"`
	Locale                           *string              `json:"locale"`
	Calendar                         *CalendarResponse    `json:"calendar" validate:"required"`
	TimeZone                         *string              `json:"time_zone" validate:"required"`
	Blueprint                        *bool                `json:"blueprint" validate:"required"`
	Template                         *bool                `json:"template" validate:"required"`
	Enrollments                      []EnrollmentResponse `json:"enrollments" validate:"required,dive"`
	HideFinalGrades                  *bool                `json:"hide_final_grades" validate:"required"`
	WorkflowState                    *string              `json:"workflow_state" validate:"required"`
	CourseFormat                     *string              `json:"course_format"`
	RestrictEnrollmentsToCourseDates *bool                `json:"restrict_enrollments_to_course_dates" validate:"required"`
}

// ToModel converts a validated response. Calling it on an unvalidated value may panic.
func (r CourseResponse) ToModel() models.Course {
	enrollments := make([]models.Enrollment, 0, len(r.Enrollments))
	for _, e := range r.Enrollments {
		enrollments = append(enrollments, e.ToModel())
	}

	return models.Course{
		ID:                               *r.ID,
		Name:                             *r.Name,
		CourseCode:                       *r.CourseCode,
		AccountID:                        *r.AccountID,
		CreatedAt:                        *r.CreatedAt,
		StartAt:                          r.StartAt,
		DefaultView:                      *r.DefaultView,
		EnrollmentTermID:                 *r.EnrollmentTermID,
		IsPublic:                         *r.IsPublic,
		GradingStandardID:                r.GradingStandardID,
		RootAccountID:                    *r.RootAccountID,
		UUID:                             *r.UUID,
		License:                          *r.License,
		GradePassbackSettings:            r.GradePassbackSettings,
		EndAt:                            r.EndAt,
		PublicSyllabus:                   *r.PublicSyllabus,
		PublicSyllabusToAuth:             *r.PublicSyllabusToAuth,
		StorageQuotaMB:                   *r.StorageQuotaMB,
		IsPublicToAuthUsers:              *r.IsPublicToAuthUsers,
		HomeroomCourse:                   *r.HomeroomCourse,
		CourseColor:                      r.CourseColor,
		FriendlyName:                     r.FriendlyName,
		Term:                             r.Term.ToModel(),
		ApplyAssignmentGroupWeights:      *r.ApplyAssignmentGroupWeights,
		Locale:                           r.Locale,
		Calendar:                         models.Calendar{ICS: *r.Calendar.ICS},
		TimeZone:                         *r.TimeZone,
		Blueprint:                        *r.Blueprint,
		Template:                         *r.Template,
		Enrollments:                      enrollments,
		HideFinalGrades:                  *r.HideFinalGrades,
		WorkflowState:                    *r.WorkflowState,
		CourseFormat:                     stringOrEmpty(r.CourseFormat),
		RestrictEnrollmentsToCourseDates: *r.RestrictEnrollmentsToCourseDates,
	}
}

// ToModel converts a validated term response.
func (r TermResponse) ToModel() models.Term {
	return models.Term{
		ID:                   *r.ID,
		Name:                 *r.Name,
		StartAt:              r.StartAt,
		EndAt:                r.EndAt,
		WorkflowState:        *r.WorkflowState,
		GradingPeriodGroupID: r.GradingPeriodGroupID,
		CreatedAt:            *r.CreatedAt,
	}
}

// ToModel converts a validated enrollment response.
func (r EnrollmentResponse) ToModel() models.Enrollment {
	return models.Enrollment{
		Type:                           *r.Type,
		Role:                           *r.Role,
		RoleID:                         *r.RoleID,
		UserID:                         *r.UserID,
		EnrollmentState:                *r.EnrollmentState,
		LimitPrivilegesToCourseSection: *r.LimitPrivilegesToCourseSection,
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
