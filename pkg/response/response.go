package response

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"runtime"
	"strings"

	"monitor-srv/pkg/discord"
	"monitor-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

func parseError(err error, c *gin.Context, d discord.IDiscord) (int, Resp) {
	switch parsedErr := err.(type) {
	case *errors.ValidationError:
		return http.StatusBadRequest, Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Error(),
		}
	case *errors.ValidationErrorCollector:
		return http.StatusBadRequest, Resp{
			ErrorCode: ValidationErrorCode,
			Message:   ValidationErrorMsg,
			Errors:    parsedErr.Errors(),
		}
	case *errors.HTTPError:
		statusCode := parsedErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		return statusCode, Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Message,
		}
	default:
		if d != nil {
			stackTrace := captureStackTrace()
			sendDiscordMessageAsync(c, d, buildReportMessage(c, fmt.Sprintf("%v", err), stackTrace))
		}
		return http.StatusInternalServerError, Resp{
			ErrorCode: InternalServerErrorCode,
			Message:   DefaultErrorMessage,
		}
	}
}

// Error sends error response (status + JSON from parseError).
func Error(c *gin.Context, err error, d discord.IDiscord) {
	statusCode, resp := parseError(err, c, d)
	c.JSON(statusCode, resp)
}

// HttpError sends response for *errors.HTTPError.
func HttpError(c *gin.Context, err *errors.HTTPError) {
	statusCode, resp := parseError(err, c, nil)
	c.JSON(statusCode, resp)
}

// ErrorWithMap looks up err in eMap and sends corresponding HTTPError, else Error.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping) {
	if httpErr, ok := eMap[err]; ok {
		Error(c, httpErr, nil)
		return
	}
	Error(c, err, nil)
}

// PanicError handles panic recovery and sends error response.
func PanicError(c *gin.Context, err any, d discord.IDiscord) {
	if errVal, ok := err.(error); ok {
		statusCode, resp := parseError(errVal, c, d)
		c.JSON(statusCode, resp)
		return
	}
	statusCode, resp := parseError(fmt.Errorf("%v", err), c, d)
	c.JSON(statusCode, resp)
}

func captureStackTrace() []string {
	var pcs [DefaultStackTraceDepth]uintptr
	n := runtime.Callers(2, pcs[:])
	if n == 0 {
		return nil
	}
	var stackTrace []string
	for _, pc := range pcs[:n] {
		f := runtime.FuncForPC(pc)
		if f != nil {
			file, line := f.FileLine(pc)
			stackTrace = append(stackTrace, fmt.Sprintf("%s:%d %s", file, line, f.Name()))
		}
	}
	return stackTrace
}

func buildReportMessage(c *gin.Context, errMsg string, stackTrace []string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**%s %s**\n", c.Request.Method, c.Request.URL.Path))
	sb.WriteString(fmt.Sprintf("Error: %s\n", errMsg))
	if len(stackTrace) > 0 {
		sb.WriteString("Stack:\n")
		for _, line := range stackTrace {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func sendDiscordMessageAsync(c *gin.Context, d discord.IDiscord, message string) {
	if d == nil {
		return
	}
	go func() {
		for _, msg := range splitMessageForDiscord(message) {
			if err := d.ReportBug(context.Background(), msg); err != nil {
				log.Printf("pkg.response.sendDiscordMessageAsync.ReportBug: %v\n", err)
			}
		}
	}()
}

func splitMessageForDiscord(message string) []string {
	var chunks []string
	var current string
	for _, line := range strings.Split(message, "\n") {
		if len(current)+len(line)+1 > DiscordMaxMessageLen {
			chunks = append(chunks, current)
			current = ""
		}
		if current != "" {
			current += "\n"
		}
		current += line
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}
