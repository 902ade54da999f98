package models

// RunMetrics summarises Canvas traffic and course counts for one run.
type RunMetrics struct {
	Requests       uint64  `json:"requests"`
	FailedRequests uint64  `json:"failed_requests"`
	AvgRequestMs   float64 `json:"avg_request_ms"`
	CoursesFetched int     `json:"courses_fetched"`
	CoursesCurrent int     `json:"courses_current"`
}
