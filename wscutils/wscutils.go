// Package wscutils implements the standard request and response envelope
// used by every sankhya web service. Requests arrive as {"data": ...},
// responses leave as {"status", "data", "messages"} where messages carry
// a message ID and an error code per failure. Handlers bind and validate
// through this package so all services answer in the same shape.
package wscutils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Request represents the standard structure of a request to the web service.
type Request struct {
	Data any `json:"data" binding:"required"`
}

// Response represents the standard structure of a response of the web service.
type Response struct {
	Status   string         `json:"status"`
	Data     any            `json:"data"`
	Messages []ErrorMessage `json:"messages"`
}

// ErrorMessage defines the format of the error part of the standard
// response object.
type ErrorMessage struct {
	MsgID   int      `json:"msgid"`
	ErrCode string   `json:"errcode"`
	Field   *string  `json:"field,omitempty"` // make it a pointer so it can be omitted
	Vals    []string `json:"vals,omitempty"`  // omit if Vals is empty
}

// Response status values
const (
	SuccessStatus = "success"
	ErrorStatus   = "error"
)

// The message ID and error code registry below is populated once at
// service startup, before any handler runs, so no locking is needed.
var (
	defaultMsgID       = DefaultMsgID
	defaultErrCode     = ErrcodeUnknown
	msgIDInvalidJSON   = MsgIDInvalidJson
	errCodeInvalidJSON = ErrcodeInvalidJson

	validationTagToMsgID   = map[string]int{}
	validationTagToErrCode = map[string]string{}
)

// SetDefaultMsgID sets the message ID used for validation errors whose
// tag has no registered mapping.
func SetDefaultMsgID(msgID int) {
	defaultMsgID = msgID
}

// SetDefaultErrCode sets the error code used for validation errors whose
// tag has no registered mapping.
func SetDefaultErrCode(errCode string) {
	defaultErrCode = errCode
}

// SetMsgIDInvalidJSON sets the message ID reported when request JSON
// cannot be bound.
func SetMsgIDInvalidJSON(msgID int) {
	msgIDInvalidJSON = msgID
}

// SetErrCodeInvalidJSON sets the error code reported when request JSON
// cannot be bound.
func SetErrCodeInvalidJSON(errCode string) {
	errCodeInvalidJSON = errCode
}

// SetValidationTagToMsgIDMap registers the message ID emitted for each
// validation tag.
func SetValidationTagToMsgIDMap(m map[string]int) {
	validationTagToMsgID = m
}

// SetValidationTagToErrCodeMap registers the error code emitted for each
// validation tag.
func SetValidationTagToErrCodeMap(m map[string]string) {
	validationTagToErrCode = m
}

// WscValidate is a generic function that accepts any data structure,
// validates it according to struct tag-provided validation rules
// and returns a slice of ErrorMessage in case of validation errors.
// This function will not add `vals` that's required as per the response
// format because it does not know the request-specific values.
// `vals` are supplied by the caller through getVals.
func WscValidate[T any](data T, getVals func(err validator.FieldError) []string) []ErrorMessage {
	var validationErrors []ErrorMessage

	validate := validator.New()

	err := validate.Struct(data)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, err := range validationErrs {
				vals := getVals(err)
				field := err.Field()
				msgID, ok := validationTagToMsgID[err.Tag()]
				if !ok {
					msgID = defaultMsgID
				}
				errCode, ok := validationTagToErrCode[err.Tag()]
				if !ok {
					errCode = defaultErrCode
				}
				validationErrors = append(validationErrors, BuildErrorMessage(msgID, errCode, &field, vals...))
			}
		}
	}
	return validationErrors
}

// BuildErrorMessage creates an ErrorMessage with the given message ID,
// error code and optional field and vals. It encapsulates the process of
// building an error message for consistency.
func BuildErrorMessage(msgID int, errCode string, fieldName *string, vals ...string) ErrorMessage {
	return ErrorMessage{
		MsgID:   msgID,
		ErrCode: errCode,
		Field:   fieldName,
		Vals:    vals,
	}
}

// NewResponse is a helper function to create a new web service response
// with any error messages that might need to be sent back to the client.
// It allows for a consistent structure in all API responses.
func NewResponse(status string, data any, messages []ErrorMessage) *Response {
	return &Response{
		Status:   status,
		Data:     data,
		Messages: messages,
	}
}

// NewSuccessResponse simplifies the process of creating a standard
// success response.
func NewSuccessResponse(data any) *Response {
	return NewResponse(SuccessStatus, data, nil)
}

// NewErrorResponse simplifies the process of creating a standard error
// response with a single error message.
func NewErrorResponse(msgID int, errCode string) *Response {
	return NewResponse(ErrorStatus, nil, []ErrorMessage{BuildErrorMessage(msgID, errCode, nil)})
}

// BindJSON provides a standard way of binding incoming JSON data to a
// given request data structure. On failure it answers with the standard
// invalid-JSON error response and reports the bind error to the caller.
func BindJSON(c *gin.Context, data any) error {
	req := Request{Data: data}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(msgIDInvalidJSON, errCodeInvalidJSON))
		return err
	}
	return nil
}

// GetRequestUser extracts the requestUser from the gin context. The auth
// middleware stores it there after token verification.
func GetRequestUser(c *gin.Context) (string, error) {
	requestUser, exists := c.Get("RequestUser")
	if !exists {
		return "", fmt.Errorf("missing_request_user")
	}

	requestUserStr, ok := requestUser.(string)
	if !ok {
		return "", fmt.Errorf("invalid_request_user")
	}

	return requestUserStr, nil
}

// SendSuccessResponse sends a JSON response.
func SendSuccessResponse(c *gin.Context, response *Response) {
	c.JSON(http.StatusOK, response)
}

// SendErrorResponse sends a JSON error response.
func SendErrorResponse(c *gin.Context, response *Response) {
	c.JSON(http.StatusBadRequest, response)
}
