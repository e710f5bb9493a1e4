package models

import "encoding/json"

// Router action names understood by the serverless backend.
const (
	ActionLogin             = "LOGIN"
	ActionDownloadCert      = "DOWNLOAD_CERTIFICATE"
	ActionResendCert        = "RESEND_CERTIFICATE"
	ActionListOrgLearners   = "LIST_ORGANIZATION_LEARNERS"
	ActionLearnerStatistics = "LEARNER_STATISTICS"
	ActionCreateCourse      = "CREATE_COURSE"
)

// RouterRequest is the inner payload of a router call. It is JSON-encoded and
// wrapped in a RouterEnvelope before being POSTed.
type RouterRequest struct {
	// Action names the server-side function to execute.
	Action string `json:"action"`

	// Payload carries action-specific arguments.
	Payload any `json:"payload"`

	// JWTToken is the bearer token of the calling session. Empty for
	// unauthenticated actions such as LOGIN.
	JWTToken string `json:"jwt_token,omitempty"`

	// RequestID correlates the call in backend logs.
	RequestID string `json:"request_id,omitempty"`
}

// RouterEnvelope is the outer body accepted by the router endpoint: the inner
// request serialized to a JSON string under "body".
type RouterEnvelope struct {
	Body string `json:"body"`
}

// RouterError is the structured error half of a router response.
type RouterError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RouterResponse is the uniform response shape of every router action.
type RouterResponse struct {
	OK     bool            `json:"ok"`
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data,omitempty"`
	Error  *RouterError    `json:"error,omitempty"`
}

// DownloadCertificateData is the data payload of a successful
// DOWNLOAD_CERTIFICATE call: a time-limited object URL plus the file name the
// server suggests for saving.
type DownloadCertificateData struct {
	URL      string `json:"url"`
	FileName string `json:"file_name,omitempty"`
}

// ResendCertificateData is the data payload of a successful self-service
// RESEND_CERTIFICATE call.
type ResendCertificateData struct {
	Message string `json:"message,omitempty"`
}

// LoginData is the data payload of a successful LOGIN call.
type LoginData struct {
	Token          string `json:"token"`
	Role           string `json:"role"`
	OrganizationID string `json:"organization_id"`
}
