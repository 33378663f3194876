package models

// Response envelopes written by the HTTP layer. Field names follow the
// public API contract, so changing a tag here is a breaking change.

// AuthResponse is the success body of the register and login endpoints.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// EmployeeResponse is the success body of the create, get and update
// employee endpoints. Message is omitted on plain reads.
type EmployeeResponse struct {
	Message  string   `json:"message,omitempty"`
	Employee Employee `json:"employee"`
}

// EmployeeListResponse is the success body of the employee listing endpoint.
type EmployeeListResponse struct {
	Employees  []Employee `json:"employees"`
	Pagination Pagination `json:"pagination"`
}

// Pagination describes the page window of a listing response.
//
// HasPrev is derived solely from Page > 1: an out-of-range page still
// reports HasPrev=true. This mirrors the documented API behavior.
type Pagination struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of the liveness endpoint. Timestamp is the
// current server time in RFC 3339 (UTC).
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
