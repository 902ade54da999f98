package models

// Enrollment describes how the token owner is enrolled in a course.
type Enrollment struct {
	Type                           string `json:"type"`
	Role                           string `json:"role"`
	RoleID                         int    `json:"role_id"`
	UserID                         int    `json:"user_id"`
	EnrollmentState                string `json:"enrollment_state"`
	LimitPrivilegesToCourseSection bool   `json:"limit_privileges_to_course_section"`
}
