package wscutils

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func setup() {
	// Set default message ID and error code for validation errors
	SetDefaultMsgID(9999)
	SetDefaultErrCode("default_error")

	// Set a custom message ID for invalid JSON errors
	SetMsgIDInvalidJSON(1001)
	SetErrCodeInvalidJSON("invalid_json")

	// Register mappings for the validation tags the conversion service uses
	SetValidationTagToMsgIDMap(map[string]int{
		"required": 2001,
		"oneof":    2002,
		"alpha":    2003,
	})
	SetValidationTagToErrCodeMap(map[string]string{
		"required": "required",
		"oneof":    "invalid_choice",
		"alpha":    "not_alphabetic",
	})
}

func TestMain(m *testing.M) {
	setup()
	code := m.Run()
	os.Exit(code)
}

// testConvertInput mirrors the shape of a conversion request so the
// validation tags under test are the ones the services actually use.
type testConvertInput struct {
	Number string `validate:"required"`
	Lang   string `validate:"omitempty,alpha"`
	Mode   string `validate:"omitempty,oneof=words ordinal currency roman"`
}

func strPtr(s string) *string {
	return &s
}

func TestSendSuccessResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	test := struct {
		name     string
		response *Response
		expected string
	}{
		name:     "Success response",
		response: NewSuccessResponse("Forty Two"),
		expected: `{"status":"success","data":"Forty Two","messages":null}`,
	}

	t.Run(test.name, func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		SendSuccessResponse(c, test.response)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, test.expected, w.Body.String())
	})
}

func TestSendErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	test := struct {
		name     string
		response *Response
		expected string
	}{
		name:     "Error response",
		response: NewErrorResponse(1001, "invalid_json"),
		expected: `{"status":"error","data":null,"messages":[{"msgid":1001,"errcode":"invalid_json"}]}`,
	}

	t.Run(test.name, func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		SendErrorResponse(c, test.response)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, test.expected, w.Body.String())
	})
}

func getVals(err validator.FieldError) []string {
	return []string{err.Field()}
}

func TestWscValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   testConvertInput
		errMsgs []ErrorMessage
	}{
		{
			name:    "Valid input",
			input:   testConvertInput{Number: "1234567", Lang: "es", Mode: "words"},
			errMsgs: nil,
		},
		{
			name:  "Missing number",
			input: testConvertInput{Lang: "es"},
			errMsgs: []ErrorMessage{
				{MsgID: 2001, ErrCode: "required", Field: strPtr("Number"), Vals: []string{"Number"}},
			},
		},
		{
			name:  "Unknown mode",
			input: testConvertInput{Number: "42", Mode: "binary"},
			errMsgs: []ErrorMessage{
				{MsgID: 2002, ErrCode: "invalid_choice", Field: strPtr("Mode"), Vals: []string{"Mode"}},
			},
		},
		{
			name:  "Numeric language selector",
			input: testConvertInput{Number: "42", Lang: "e5"},
			errMsgs: []ErrorMessage{
				{MsgID: 2003, ErrCode: "not_alphabetic", Field: strPtr("Lang"), Vals: []string{"Lang"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsgs := WscValidate(tt.input, getVals)

			if !reflect.DeepEqual(errMsgs, tt.errMsgs) {
				t.Errorf("WscValidate() got %v, want %v", errMsgs, tt.errMsgs)
			}
		})
	}
}

func TestWscValidateUnmappedTag(t *testing.T) {
	// A tag with no registered mapping falls back to the defaults.
	type onlyEmail struct {
		Contact string `validate:"email"`
	}

	errMsgs := WscValidate(onlyEmail{Contact: "not-an-email"}, getVals)

	assert.Len(t, errMsgs, 1)
	assert.Equal(t, 9999, errMsgs[0].MsgID)
	assert.Equal(t, "default_error", errMsgs[0].ErrCode)
}

func TestBindJSON_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type testData struct {
		Number string `json:"number"`
	}

	tests := []struct {
		name    string
		jsonStr string
		want    testData
	}{
		{
			name:    "Single field",
			jsonStr: `{"data": {"number": "1234"}}`,
			want:    testData{Number: "1234"},
		},
		{
			name:    "Empty number",
			jsonStr: `{"data": {"number": ""}}`,
			want:    testData{Number: ""},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := bytes.NewBufferString(tc.jsonStr)
			req, _ := http.NewRequest(http.MethodPost, "/", body)
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			var data testData
			err := BindJSON(c, &data)

			assert.Nil(t, err)
			assert.Equal(t, tc.want, data)
		})
	}
}

func TestBindJSON_InvalidJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		jsonStr      string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Incorrect structure",
			jsonStr:      `{"data": "not an object"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"status":"error","data":null,"messages":[{"msgid":1001,"errcode":"invalid_json"}]}`,
		},
		{
			name:         "Malformed JSON",
			jsonStr:      `{"data": }`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"status":"error","data":null,"messages":[{"msgid":1001,"errcode":"invalid_json"}]}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := bytes.NewBufferString(tc.jsonStr)
			req, _ := http.NewRequest(http.MethodPost, "/", body)
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			type testData struct {
				Number string `json:"number"`
			}
			var data testData
			err := BindJSON(c, &data)

			assert.NotNil(t, err)
			assert.Equal(t, tc.expectedCode, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestGetRequestUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Present", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("RequestUser", "ops@example.com")

		user, err := GetRequestUser(c)
		assert.NoError(t, err)
		assert.Equal(t, "ops@example.com", user)
	})

	t.Run("Missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		_, err := GetRequestUser(c)
		assert.Error(t, err)
	})

	t.Run("Wrong type", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("RequestUser", 42)

		_, err := GetRequestUser(c)
		assert.Error(t, err)
	})
}
