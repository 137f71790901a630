package http

import (
	"errors"
	"net/http"
	"strings"

	"finflix/domain/dto"
	"finflix/infrastructure/logger"
	"finflix/usecase"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// StatusLengthRequired is what the API has always answered malformed input
// with; clients depend on it.
const StatusLengthRequired = http.StatusLengthRequired

const MsgInvalidInput = "Invalid user data"

var statusByKind = map[usecase.ErrorKind]int{
	usecase.KindValidation:   StatusLengthRequired,
	usecase.KindNotFound:     http.StatusNotFound,
	usecase.KindConflict:     http.StatusBadRequest,
	usecase.KindInvalidState: http.StatusBadRequest,
	usecase.KindUnauthorized: http.StatusUnauthorized,
	usecase.KindInternal:     http.StatusInternalServerError,
}

// StatusOf maps a use case error onto an HTTP status.
func StatusOf(err error) int {
	if status, ok := statusByKind[usecase.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func writeError(ctx *gin.Context, err error) {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(ctx.Request.Context()).WithField("error", err).Error("Request failed")
	}
	ctx.AbortWithStatusJSON(status, dto.ResError{Error: usecase.MessageOf(err)})
}

// writeBindError answers a request whose body or params failed validation.
func writeBindError(ctx *gin.Context, err error) {
	logger.FromContext(ctx.Request.Context()).WithField("error", err).Debug(ErrorUnmarshal)
	ctx.AbortWithStatusJSON(StatusLengthRequired, dto.ResValidation{
		Message: MsgInvalidInput,
		Errors:  fieldErrors(err),
	})
}

func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"body": "malformed JSON body"}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[jsonName(fe)] = describe(fe)
	}
	return out
}

// jsonName returns the json key of the failing field. Embedded structs show
// up in the namespace, so only the last segment is used.
func jsonName(fe validator.FieldError) string {
	name := fe.Field()
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "objectid":
		return "must be a valid id"
	case "password":
		return "must be at least 8 characters and contain a letter and a number"
	}
	return "is invalid (" + fe.Tag() + ")"
}
