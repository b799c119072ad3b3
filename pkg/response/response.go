package response

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/online-shopping/catalog-service/pkg/errs"
)

// TraceIDKey is the echo context key under which the logger middleware
// stores the per-request trace id.
const TraceIDKey = "trace_id"

type Header struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	TraceID string `json:"traceId"`
}

type Error struct {
	Message string `json:"message"`
}

type DataResponse struct {
	Header  Header      `json:"header"`
	Payload interface{} `json:"payload"`
	Errors  []Error     `json:"errors"`
}

func TraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDKey).(string)
	return traceID
}

func WriteDataResponse(c echo.Context, statusCode int, message string, payload interface{}) error {
	resp := DataResponse{
		Header: Header{
			Message: message,
			Code:    strconv.Itoa(statusCode),
			TraceID: TraceID(c),
		},
		Payload: payload,
		Errors:  []Error{},
	}

	return c.JSON(statusCode, resp)
}

func WriteErrorResponse(c echo.Context, err error) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := DataResponse{
		Header: Header{
			Message: "exception occurred when processing the request",
			Code:    strconv.Itoa(statusCode),
			TraceID: TraceID(c),
		},
		Errors: []Error{{Message: err.Error()}},
	}

	return c.JSON(statusCode, resp)
}
