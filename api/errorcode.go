package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "storage failure",
		1001: "invalid api token",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "invalid parameter type",

		1100: "person not found",
		1101: "person already exists",

		1200: "firestation mapping not found",
		1201: "firestation mapping already exists",

		1300: "medical record not found",
		1301: "medical record already exists",
	}

	errorInternalServer  = errorJSON(999)
	errorStorage         = errorJSON(1000)
	errorInvalidAPIToken = errorJSON(1001)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)
	errorInvalidParamType   = errorJSON(1012)

	errorPersonNotFound = errorJSON(1100)
	errorPersonExists   = errorJSON(1101)

	errorFirestationNotFound = errorJSON(1200)
	errorFirestationExists   = errorJSON(1201)

	errorMedicalRecordNotFound = errorJSON(1300)
	errorMedicalRecordExists   = errorJSON(1301)
)

// ErrorResponse is the body of every failed request. Timestamp, Status, Error
// and Path are filled when the response is written.
type ErrorResponse struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
	Code      int64  `json:"code"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// withMessage replaces the default message of an error object
func withMessage(obj ErrorResponse, message string) ErrorResponse {
	obj.Message = message
	return obj
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	obj.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	obj.Status = code
	obj.Error = http.StatusText(code)
	obj.Path = c.Request.URL.Path

	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		_ = c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
