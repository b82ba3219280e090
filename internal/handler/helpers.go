package handler

import (
	"errors"
	"net/http"
	"reflect"

	"insurance/internal/apierror"
	"insurance/internal/dto"
	"insurance/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0 work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(apierror.CodeValidation, "Malformed JSON body: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, apierror.New(apierror.CodeValidation, err.Error()))
			return false
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// bindPage reads ?page=&limit= and rejects values outside the accepted range.
func bindPage(c *gin.Context) (dto.PageRequest, bool) {
	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(apierror.CodeValidation, "Invalid pagination: "+err.Error()))
		return page, false
	}
	if err := validate.Struct(page); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(apierror.CodeValidation,
			"Invalid pagination: page must be >= 1 and limit between 1 and 100"))
		return page, false
	}
	return page, true
}

// respondError writes the envelope for err. Domain errors carry a message
// that is safe to show; anything else is logged and hidden behind a 500.
func respondError(c *gin.Context, err error) {
	if derr, ok := apierror.As(err); ok {
		c.JSON(http.StatusBadRequest, apierror.New(derr.Kind.Code(), derr.Msg))
		return
	}
	log.Error().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("path", c.FullPath()).
		Err(err).
		Msg("request failed")
	c.JSON(http.StatusInternalServerError, apierror.New(apierror.CodeInternal, "Internal server error"))
}

// respondWritten answers a successful create or update.
func respondWritten(c *gin.Context, msg *dto.StatusMessage) {
	c.Header("Location", msg.Location)
	c.JSON(msg.Status, msg)
}
