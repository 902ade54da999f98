package models

// APIResponse is a raw Canvas response handed from repositories to services, which own the
// interpretation of status and body.
type APIResponse struct {
	StatusCode int
	Body       []byte
}
