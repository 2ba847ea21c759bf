// Package convsvc implements the number conversion web service. It
// exposes one conversion endpoint driven by a mode field, a listing of
// the supported languages and a liveness probe, on top of the service
// and wscutils layers.
package convsvc

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/remiges-tech/sankhya/metrics"
	"github.com/remiges-tech/sankhya/numwords"
	"github.com/remiges-tech/sankhya/service"
	"github.com/remiges-tech/sankhya/wscutils"
)

//-----------------------------------------------------------------------------
// Constants
//-----------------------------------------------------------------------------

const (
	// Error codes and message IDs
	ErrMsgIDInvalidNumber   = 1002
	ErrCodeInvalidNumber    = "invalid_number"
	ErrMsgIDUnsupportedLang = 1003
	ErrCodeUnsupportedLang  = "unsupported_language"
	ErrMsgIDValueTooLarge   = 1004
	ErrCodeValueTooLarge    = "value_too_large"
	ErrMsgIDInvalidMode     = 1005
	ErrCodeInvalidMode      = "invalid_mode"
	ErrMsgIDInternalErr     = 1006
	ErrCodeInternalErr      = "internal"
)

// Service dependency keys looked up by the handlers.
const (
	// DepDefaultLang holds the language applied when a request does not
	// name one.
	DepDefaultLang = "defaultLang"
	// DepResultCache holds a ResultCache. Without it the handlers fall
	// back to the service's Redis client, or to no caching at all.
	DepResultCache = "resultCache"
)

// Metric names registered by RegisterMetrics.
const (
	MetricConversions     = "conversions_total"
	MetricConvertDuration = "convert_duration_seconds"
)

//-----------------------------------------------------------------------------
// Request Types
//-----------------------------------------------------------------------------

type ConvertRequest struct {
	Number string `json:"number" validate:"required"`
	Lang   string `json:"lang"`
	Mode   string `json:"mode" validate:"omitempty,oneof=words ordinal currency decimal roman digits"`
}

// ConvertResult is the data part of a successful conversion response.
// Lang carries the resolved language tag and is only set for the words
// mode, the other modes render in English.
type ConvertResult struct {
	Input string `json:"input"`
	Mode  string `json:"mode"`
	Lang  string `json:"lang,omitempty"`
	Text  string `json:"text"`
}

// LanguagesResult is the data part of the languages listing response.
type LanguagesResult struct {
	Languages []string `json:"languages"`
}

//-----------------------------------------------------------------------------
// Initialization
//-----------------------------------------------------------------------------

func init() {
	// Step 1: Set up validation tag to error code mapping
	wscutils.SetValidationTagToErrCodeMap(map[string]string{
		"required": "required",
		"oneof":    ErrCodeInvalidMode,
	})

	// Step 2: Set up validation tag to message ID mapping
	wscutils.SetValidationTagToMsgIDMap(map[string]int{
		"required": 101,
		"oneof":    ErrMsgIDInvalidMode,
	})

	// Step 3: Set default error code and message ID
	wscutils.SetDefaultErrCode("invalid_format")
	wscutils.SetDefaultMsgID(101)
}

// RegisterMetrics registers the conversion metrics. Call it once at
// startup on the Metrics instance the service will carry.
func RegisterMetrics(m metrics.Metrics) {
	m.RegisterWithLabels(MetricConversions, "Counter",
		"Conversions by mode, language and outcome", []string{"mode", "lang", "status"})
	m.Register(MetricConvertDuration, "Histogram",
		"Time taken by the convert handler in seconds")
}

// RegisterRoutes mounts the conversion endpoints on the service.
func RegisterRoutes(s *service.Service) {
	s.RegisterRoute(http.MethodPost, "/v1/convert", HandleConvertRequest)
	s.RegisterRoute(http.MethodGet, "/v1/languages", HandleLanguagesRequest)
	s.RegisterRoute(http.MethodGet, "/health", HandleHealthRequest)
}

//-----------------------------------------------------------------------------
// Request Handlers
//-----------------------------------------------------------------------------

// HandleConvertRequest converts one number to words. The request names
// the input, an optional mode (words when absent) and an optional
// language for the words mode.
func HandleConvertRequest(c *gin.Context, s *service.Service) {
	start := time.Now()
	s.LogHarbour.Log("Convert request received")

	//-------------------------------------------------------------------------
	// Step 1: Parse and bind request data
	//-------------------------------------------------------------------------
	var convertReq ConvertRequest
	if err := wscutils.BindJSON(c, &convertReq); err != nil {
		return
	}

	//-------------------------------------------------------------------------
	// Step 2: Validate request data
	//-------------------------------------------------------------------------
	validationErrors := wscutils.WscValidate(convertReq, func(err validator.FieldError) []string {
		switch err.Tag() {
		case "required":
			return []string{} // Field name is already in ErrorMessage.field

		case "oneof":
			return []string{err.Value().(string), err.Param()}

		default:
			return []string{}
		}
	})

	if len(validationErrors) > 0 {
		c.JSON(400, wscutils.NewResponse(wscutils.ErrorStatus, nil, validationErrors))
		return
	}

	mode := convertReq.Mode
	if mode == "" {
		mode = numwords.ModeWords
	}
	lang := convertReq.Lang
	if lang == "" && mode == numwords.ModeWords {
		lang = defaultLang(c, s)
	}

	//-------------------------------------------------------------------------
	// Step 3: Serve from the result cache when possible
	//-------------------------------------------------------------------------
	cache := resultCache(s)
	key := CacheKey(mode, lang, convertReq.Number)
	if text, hit, err := cache.Get(c.Request.Context(), key); err != nil {
		s.LogHarbour.Error(fmt.Errorf("result cache get: %w", err)).
			LogActivity("result cache unavailable", map[string]any{"key": key})
	} else if hit {
		recordConversion(s, mode, lang, "cached")
		observeDuration(s, start)
		wscutils.SendSuccessResponse(c, wscutils.NewSuccessResponse(newConvertResult(convertReq.Number, mode, lang, text)))
		return
	}

	//-------------------------------------------------------------------------
	// Step 4: Perform the conversion
	//-------------------------------------------------------------------------
	text, err := numwords.Render(convertReq.Number, mode, lang)
	if err != nil {
		status, msgID, errCode := conversionErrorCodes(err)
		if status == 500 {
			s.LogHarbour.Error(fmt.Errorf("conversion: %w", err)).
				LogActivity("conversion failed", map[string]any{"number": convertReq.Number, "mode": mode})
		}
		recordConversion(s, mode, lang, "error")
		observeDuration(s, start)
		c.JSON(status, wscutils.NewErrorResponse(msgID, errCode))
		return
	}

	//-------------------------------------------------------------------------
	// Step 5: Store the result and send the response
	//-------------------------------------------------------------------------
	if err := cache.Set(c.Request.Context(), key, text); err != nil {
		s.LogHarbour.Error(fmt.Errorf("result cache set: %w", err)).
			LogActivity("result cache unavailable", map[string]any{"key": key})
	}
	recordConversion(s, mode, lang, "ok")
	observeDuration(s, start)
	wscutils.SendSuccessResponse(c, wscutils.NewSuccessResponse(newConvertResult(convertReq.Number, mode, lang, text)))
}

// HandleLanguagesRequest lists the language tags the words mode accepts.
func HandleLanguagesRequest(c *gin.Context, s *service.Service) {
	s.LogHarbour.Log("Languages request received")
	wscutils.SendSuccessResponse(c, wscutils.NewSuccessResponse(LanguagesResult{Languages: numwords.Languages()}))
}

// HandleHealthRequest is the liveness probe. It responds outside the
// response envelope.
func HandleHealthRequest(c *gin.Context, s *service.Service) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

//-----------------------------------------------------------------------------
// Helper Functions
//-----------------------------------------------------------------------------

// conversionErrorCodes maps a converter error to the HTTP status, message
// ID and error code to respond with.
func conversionErrorCodes(err error) (status int, msgID int, errCode string) {
	switch {
	case errors.Is(err, numwords.ErrUnsupportedLanguage):
		return 400, ErrMsgIDUnsupportedLang, ErrCodeUnsupportedLang
	case errors.Is(err, numwords.ErrValueTooLarge):
		return 400, ErrMsgIDValueTooLarge, ErrCodeValueTooLarge
	case errors.Is(err, numwords.ErrUnknownMode):
		return 400, ErrMsgIDInvalidMode, ErrCodeInvalidMode
	case errors.Is(err, numwords.ErrInvalidInput):
		return 400, ErrMsgIDInvalidNumber, ErrCodeInvalidNumber
	default:
		return 500, ErrMsgIDInternalErr, ErrCodeInternalErr
	}
}

// defaultLang returns the language applied when a request does not name
// one. A Rigel-backed service reads it live; otherwise the value
// injected at startup applies.
func defaultLang(c *gin.Context, s *service.Service) string {
	if s.RigelConfig != nil {
		if lang, err := s.RigelConfig.Get(c.Request.Context(), "convert.defaultLang"); err == nil && lang != "" {
			return lang
		}
	}
	if v, ok := s.Dependencies[DepDefaultLang]; ok {
		if lang, ok := v.(string); ok && lang != "" {
			return lang
		}
	}
	return numwords.LangEnglish
}

// resultCache picks the cache for this request: an injected ResultCache
// first, then the service's Redis client with the default TTL, then no
// caching.
func resultCache(s *service.Service) ResultCache {
	if v, ok := s.Dependencies[DepResultCache]; ok {
		if rc, ok := v.(ResultCache); ok {
			return rc
		}
	}
	if s.Cache != nil {
		return NewRedisResultCache(s.Cache, 0)
	}
	return NoopResultCache{}
}

func newConvertResult(input, mode, lang, text string) ConvertResult {
	result := ConvertResult{Input: input, Mode: mode, Text: text}
	if mode == numwords.ModeWords {
		if tag, err := numwords.ResolveLang(lang); err == nil {
			result.Lang = tag
		}
	}
	return result
}

func recordConversion(s *service.Service, mode, lang, status string) {
	if s.Metrics == nil {
		return
	}
	s.Metrics.RecordWithLabels(MetricConversions, 1, mode, lang, status)
}

func observeDuration(s *service.Service, start time.Time) {
	if s.Metrics == nil {
		return
	}
	s.Metrics.Record(MetricConvertDuration, time.Since(start).Seconds())
}
