package auth

import "go.uber.org/zap"

// logAttempt records an authentication attempt. Passwords are never logged.
func (h *LocalAuthHandler) logAttempt(action string, ok bool, username string, err error) {
	fields := []zap.Field{
		zap.String("action", action),
		zap.String("username", username),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}

	if ok {
		h.logger.Info("auth attempt succeeded", fields...)
		return
	}
	h.logger.Warn("auth attempt failed", fields...)
}
