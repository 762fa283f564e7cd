package middleware

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/lotflow-backend/api/responses"
	pkgerrors "github.com/angelmondragon/lotflow-backend/pkg/errors"
	"github.com/angelmondragon/lotflow-backend/pkg/logger"
)

// PasscodeHeader carries the shared company passcode on write requests.
const PasscodeHeader = "X-COMPANY-PASSCODE"

const msgInvalidPasscode = "Invalid passcode"

type passcodeVerifier interface {
	Verify(candidate string) bool
}

// Passcode rejects requests whose passcode header does not match the configured secret.
func Passcode(verifier passcodeVerifier, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			candidate := strings.TrimSpace(r.Header.Get(PasscodeHeader))
			if candidate == "" || verifier == nil || !verifier.Verify(candidate) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, msgInvalidPasscode))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
