package wscutils

// Error codes shared by every sankhya web service. Service packages
// define their own domain codes alongside these.
const (
	ErrcodeUnknown                 = "unknown"
	ErrcodeInvalidJson             = "invalid_json"
	ErrcodeRequestUserInvalid      = "request_user_invalid"
	ErrcodeMissing                 = "missing"
	ErrcodeTokenMissing            = "token_missing"
	ErrcodeTokenVerificationFailed = "token_verification_failed"
	ErrcodeTokenCacheFailed        = "token_cache_failed"
	ErrcodeRequestTimeout          = "request_timeout"
)
