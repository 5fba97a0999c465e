package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/spimentel1201/RepairServiceAPI/internal/apierror"
	"github.com/spimentel1201/RepairServiceAPI/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps service error kinds to HTTP status codes and writes the
// standard envelope. Unknown errors become opaque 500s; the detail is logged,
// never leaked.
func respondError(c *gin.Context, err error) {
	var stockErr *apperror.StockError
	if errors.As(err, &stockErr) {
		c.JSON(http.StatusConflict, apierror.NewStock(
			stockErr.Error(), stockErr.ProductName, stockErr.Available, stockErr.Requested))
		return
	}

	switch apperror.KindOf(err) {
	case apperror.InvalidInput:
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case apperror.NotFound:
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case apperror.Conflict, apperror.InsufficientStock:
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unexpected service error")
		c.JSON(http.StatusInternalServerError, apierror.New("internal server error"))
	}
}
