package middleware

import (
	"slovanglik/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// RegisterUser ensures the sender has a user row before any handler runs
func RegisterUser(users *service.UserService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			if err := users.EnsureUser(sender.ID, sender.Username); err != nil {
				logger.Error("Failed to ensure user exists",
					zap.Int64("user_id", sender.ID),
					zap.Error(err),
				)
				return c.Send("Произошла ошибка. Попробуйте позже.")
			}

			return next(c)
		}
	}
}
