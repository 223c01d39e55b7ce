package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "reconstruction/internal/errors"
	"reconstruction/internal/logger"
	"reconstruction/internal/models"
	"reconstruction/internal/services"
	"reconstruction/internal/uuid"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error apperrors.AppError `json:"error"`
}

// MessageResponse is the body of a successful delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// parsePathID reads a UUID path parameter.
// Returns ErrInvalidInput if the parameter is not a well-formed UUID.
func parsePathID(c *gin.Context, param string) (string, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// parseBodyID canonicalises a UUID taken from a request body field.
func parseBodyID(field, value string) (string, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+field)
	}
	return id, nil
}

// parseIDQuery reads an optional UUID query parameter.
func parseIDQuery(c *gin.Context, name string) (*string, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+name)
	}
	return &id, nil
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter.
func parseDateQuery(c *gin.Context, name string) (*models.Date, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	d, err := models.ParseDate(v)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, name+": "+err.Error())
	}
	return &d, nil
}

// parseTransactionFilter reads the article_id, category_id, from and to
// query parameters shared by the transaction list and the export.
func parseTransactionFilter(c *gin.Context) (services.TransactionFilter, error) {
	var filter services.TransactionFilter
	var err error

	if filter.ArticleID, err = parseIDQuery(c, "article_id"); err != nil {
		return filter, err
	}
	if filter.CategoryID, err = parseIDQuery(c, "category_id"); err != nil {
		return filter, err
	}
	if filter.From, err = parseDateQuery(c, "from"); err != nil {
		return filter, err
	}
	if filter.To, err = parseDateQuery(c, "to"); err != nil {
		return filter, err
	}
	return filter, nil
}

// bindError turns a binding failure into an INVALID_INPUT error.
func bindError(err error) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}
