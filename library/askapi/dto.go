package askapi

import "encoding/json"

// StatusError is the in-band status the backend reports when it failed to answer.
const StatusError = "error"

// AskRequest is the body of POST /ask.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse is the envelope returned by POST /ask.
type AskResponse struct {
	Status    string  `json:"status"`
	Data      AskData `json:"data"`
	Timestamp string  `json:"timestamp"`
}

// AskData carries the answer of a question.
//
// RawResults is kept undecoded, the backend does not guarantee its shape.
type AskData struct {
	Answer     string          `json:"answer"`
	Query      string          `json:"query"`
	TokensUsed int             `json:"tokens_used"`
	RawResults json.RawMessage `json:"raw_results"`
}

// HealthResponse is the body returned by GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Healthy reports whether the backend declared itself ready.
func (r HealthResponse) Healthy() bool {
	return r.Status == "healthy"
}

// errorBody models FastAPI error responses, detail is either a string or
// a list of validation errors.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type validationError struct {
	Msg string `json:"msg"`
}
