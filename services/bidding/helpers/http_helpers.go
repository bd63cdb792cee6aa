package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-registry/internal/biddingerrors"
	"auction-registry/utils"

	"github.com/gin-gonic/gin"
)

var errMissingClientID = errors.New("missing " + ClientIDHeader + " header")

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// RequireClientID returns the caller identity, or writes a 401 and returns false
func RequireClientID(c *gin.Context, handlerName string) (string, bool) {
	clientID := c.GetHeader(ClientIDHeader)
	if clientID == "" {
		utils.JSONError(c, http.StatusUnauthorized, errMissingClientID, "client identity required")
		utils.Warn(handlerName+": missing client identity", map[string]any{"path": c.Request.URL.Path})
		return "", false
	}
	return clientID, true
}

// HandleServiceError maps a service error to a JSON error response and logs it
func HandleServiceError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, biddingerrors.ErrDuplicateItem):
		return http.StatusConflict, "item already exists"
	case errors.Is(err, biddingerrors.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid argument"
	case errors.Is(err, biddingerrors.ErrForbidden):
		return http.StatusForbidden, "only the item owner may do this"
	case errors.Is(err, biddingerrors.ErrSelfBid):
		return http.StatusForbidden, "cannot bid on your own item"
	case errors.Is(err, biddingerrors.ErrInvalidTransition):
		return http.StatusConflict, "invalid auction state transition"
	case errors.Is(err, biddingerrors.ErrAuctionNotOpen):
		return http.StatusConflict, "item is not currently up for bidding"
	case errors.Is(err, biddingerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction has finished"
	case errors.Is(err, biddingerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
