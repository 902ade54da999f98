package models

// Calendar links to the course iCalendar feed.
type Calendar struct {
	ICS string `json:"ics"`
}

// Course is the canonical shape of a Canvas course for the token owner. Pointer fields are
// nullable upstream. Most metadata is carried through untouched.
type Course struct {
	ID                               int          `json:"id"`
	Name                             string       `json:"name"`
	CourseCode                       string       `json:"course_code"`
	AccountID                        int          `json:"account_id"`
	CreatedAt                        string       `json:"created_at"`
	StartAt                          *string      `json:"start_at"`
	DefaultView                      string       `json:"default_view"`
	EnrollmentTermID                 int          `json:"enrollment_term_id"`
	IsPublic                         bool         `json:"is_public"`
	GradingStandardID                *int         `json:"grading_standard_id"`
	RootAccountID                    int          `json:"root_account_id"`
	UUID                             string       `json:"uuid"`
	License                          string       `json:"license"`
	GradePassbackSettings            *string      `json:"grade_passback_settings,omitempty"`
	EndAt                            *string      `json:"end_at"`
	PublicSyllabus                   bool         `json:"public_syllabus"`
	PublicSyllabusToAuth             bool         `json:"public_syllabus_to_auth"`
	StorageQuotaMB                   int          `json:"storage_quota_mb"`
	IsPublicToAuthUsers              bool         `json:"is_public_to_auth_users"`
	HomeroomCourse                   bool         `json:"homeroom_course"`
	CourseColor                      *string      `json:"course_color"`
	FriendlyName                     *string      `json:"friendly_name"`
	Term                             Term         `json:"term"`
	ApplyAssignmentGroupWeights      bool         `json:"apply_assignment_group_weights"`
	Locale                           *string      `json:"locale,omitempty"`
	Calendar                         Calendar     `json:"calendar"`
	TimeZone                         string       `json:"time_zone"`
	Blueprint                        bool         `json:"blueprint"`
	Template                         bool         `json:"template"`
	Enrollments                      []Enrollment `json:"enrollments"`
	HideFinalGrades                  bool         `json:"hide_final_grades"`
	WorkflowState                    string       `json:"workflow_state"`
	CourseFormat                     string       `json:"course_format"`
	RestrictEnrollmentsToCourseDates bool         `json:"restrict_enrollments_to_course_dates"`
}
