package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"commerce-backoffice/internal/domain"
	"github.com/gin-gonic/gin"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// writeError maps the domain error taxonomy onto HTTP statuses. Each
// not-found kind keeps its own code so callers can tell which lookup
// failed.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrTotalOverflow),
		errors.Is(err, domain.ErrNegativeAmount),
		errors.Is(err, domain.ErrImmutableCPF):
		c.JSON(http.StatusBadRequest, errorResponse{errorBody{Code: "InvalidInput", Message: err.Error()}})
	case errors.Is(err, domain.ErrClientNotFound):
		c.JSON(http.StatusNotFound, errorResponse{errorBody{Code: "ClientNotFound", Message: err.Error()}})
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, errorResponse{errorBody{Code: "ProductNotFound", Message: err.Error()}})
	case errors.Is(err, domain.ErrAddressNotFound):
		c.JSON(http.StatusNotFound, errorResponse{errorBody{Code: "AddressNotFound", Message: err.Error()}})
	case errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, errorResponse{errorBody{Code: "OrderNotFound", Message: err.Error()}})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{errorBody{Code: "NotFound", Message: err.Error()}})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, errorResponse{errorBody{Code: "AlreadyExists", Message: err.Error()}})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{errorBody{Code: "InternalError", Message: "internal error"}})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorResponse{errorBody{Code: "InvalidInput", Message: msg}})
}

// idParam parses the :id path segment.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		badRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}
