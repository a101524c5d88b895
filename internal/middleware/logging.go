package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// LoggingMiddleware logs every update and drops the ones without a sender
func LoggingMiddleware(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				logger.Debug("Dropping update without sender")
				return nil
			}

			logger.Debug("Update received",
				zap.Int64("user_id", sender.ID),
				zap.String("username", sender.Username),
				zap.String("text", c.Text()),
			)

			if err := next(c); err != nil {
				logger.Error("Handler failed",
					zap.Int64("user_id", sender.ID),
					zap.Error(err),
				)
				return err
			}
			return nil
		}
	}
}
