package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

// ErrorEnvelope is the error body: {"error": "<message>", "code": "<CODE>"}.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}
