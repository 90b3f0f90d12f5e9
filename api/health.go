package api

import (
	stderrors "errors"

	"github.com/Aidin1998/contacts_manager/api/responses"
	"github.com/Aidin1998/contacts_manager/internal/database"
	"github.com/Aidin1998/contacts_manager/pkg/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var errNoScalar = stderrors.New("health query returned no value")

// checkHealth runs the probe query in a scoped session. An empty result means
// the database is reachable but not what we expect; any other failure is a
// connectivity fault. The cause is logged, never rendered.
// @Summary Database health check
// @Tags system
// @Produce json
// @Success 200 {object} responses.HealthCheckResponse
// @Failure 500 {object} responses.InternalServerErrorResponse
// @Router /api/healthchecker [get]
func (s *Server) checkHealth(c *gin.Context) error {
	err := s.sessions.Session(c.Request.Context(), func(tx *gorm.DB) error {
		rows, err := tx.Raw(s.healthQuery).Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		if !rows.Next() {
			if err := rows.Err(); err != nil {
				return err
			}
			return errNoScalar
		}
		var scalar any
		if err := rows.Scan(&scalar); err != nil {
			return err
		}
		if scalar == nil {
			return errNoScalar
		}
		return nil
	})

	switch {
	case err == nil:
		s.logger.Info("Health check OK")
		responses.OK(c, responses.HealthCheckResponse{Status: responses.HealthStatusOK})
		return nil
	case errors.Is(err, errNoScalar), errors.Is(err, database.ErrNotInitialized):
		s.logger.Error(errors.MessageDatabaseNotConfigured, zap.Error(err))
		return errors.Internal(errors.MessageDatabaseNotConfigured).Wrap(err)
	default:
		s.logger.Error(errors.MessageDatabaseConnection, zap.Error(err))
		return errors.Internal(errors.MessageDatabaseConnection).Wrap(err)
	}
}
