package router

import (
	"github.com/remiges-tech/sankhya/wscutils"
)

// MiddlewareErrorScenario names a failure a middleware can report to the
// client. Applications register their own message IDs and error codes per
// scenario at startup; unregistered scenarios fall back to the wscutils
// defaults below.
type MiddlewareErrorScenario string

const (
	RequestTimeout          MiddlewareErrorScenario = "RequestTimeout"
	TokenMissing            MiddlewareErrorScenario = "TokenMissing"
	TokenVerificationFailed MiddlewareErrorScenario = "TokenVerificationFailed"
	TokenCacheFailed        MiddlewareErrorScenario = "TokenCacheFailed"
)

var (
	defaultMsgID   = wscutils.DefaultMsgID
	defaultErrCode = wscutils.ErrcodeUnknown
)

var middlewareScenarioToMsgID = make(map[MiddlewareErrorScenario]int)
var middlewareScenarioToErrCode = make(map[MiddlewareErrorScenario]string)

var scenarioFallbackErrCode = map[MiddlewareErrorScenario]string{
	RequestTimeout:          wscutils.ErrcodeRequestTimeout,
	TokenMissing:            wscutils.ErrcodeTokenMissing,
	TokenVerificationFailed: wscutils.ErrcodeTokenVerificationFailed,
	TokenCacheFailed:        wscutils.ErrcodeTokenCacheFailed,
}

// RegisterMiddlewareMsgID sets the message ID reported for a scenario. It is
// meant to be called once at startup.
func RegisterMiddlewareMsgID(scenario MiddlewareErrorScenario, msgID int) {
	middlewareScenarioToMsgID[scenario] = msgID
}

// RegisterMiddlewareErrCode sets the error code reported for a scenario. It is
// meant to be called once at startup.
func RegisterMiddlewareErrCode(scenario MiddlewareErrorScenario, errCode string) {
	middlewareScenarioToErrCode[scenario] = errCode
}

// scenarioErrorResponse builds the error envelope for a scenario using the
// registered message ID and error code, falling back to the scenario's
// wscutils code and then to the package defaults.
func scenarioErrorResponse(scenario MiddlewareErrorScenario) *wscutils.Response {
	msgID, ok := middlewareScenarioToMsgID[scenario]
	if !ok {
		msgID = defaultMsgID
	}

	errCode, ok := middlewareScenarioToErrCode[scenario]
	if !ok {
		errCode, ok = scenarioFallbackErrCode[scenario]
		if !ok {
			errCode = defaultErrCode
		}
	}

	return wscutils.NewErrorResponse(msgID, errCode)
}
