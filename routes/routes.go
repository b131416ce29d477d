// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"relay-server/commons"
	"relay-server/handlers"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, messageHandler *handlers.MessageHandler) {
	commons.Logger.Debug("Registering routes")
	e.GET("/messages", messageHandler.ListMessagesHandler)
	e.POST("/messages/send", messageHandler.SendMessageHandler)
	commons.Logger.Info("Routes registered successfully")
}
