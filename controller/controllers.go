package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/polymertrack/sms-notifier/log"
	"github.com/polymertrack/sms-notifier/service"
	"github.com/polymertrack/sms-notifier/service/dto"
)

// SendOrderNotification godoc
// @Summary Send order notification
// @Description Sends an sms notification tied to a customer order
// @Accept json
// @Produce json
// @Param notification body dto.OrderNotification true "Order notification"
// @Success 200 {object} dto.MessageStatus
// @Failure 400 "error description"
// @Router /notifications/order [post]
func GetSendOrderNotificationFunc(srv service.Service) echo.HandlerFunc {

	return func(c echo.Context) error {
		req := new(dto.OrderNotification)
		if err := c.Bind(req); err != nil {
			return err
		}

		status, err := srv.SendOrderNotification(*req)
		return respondMessage(c, status, err)
	}
}

// SendJobOrderUpdate godoc
// @Summary Send job order update
// @Description Sends an sms update tied to a production job order
// @Accept json
// @Produce json
// @Param notification body dto.JobOrderUpdate true "Job order update"
// @Success 200 {object} dto.MessageStatus
// @Failure 400 "error description"
// @Router /notifications/job-order [post]
func GetSendJobOrderUpdateFunc(srv service.Service) echo.HandlerFunc {

	return func(c echo.Context) error {
		req := new(dto.JobOrderUpdate)
		if err := c.Bind(req); err != nil {
			return err
		}

		status, err := srv.SendJobOrderUpdate(*req)
		return respondMessage(c, status, err)
	}
}

// SendCustomMessage godoc
// @Summary Send custom message
// @Description Sends a free-form sms message
// @Accept json
// @Produce json
// @Param notification body dto.CustomMessage true "Custom message"
// @Success 200 {object} dto.MessageStatus
// @Failure 400 "error description"
// @Router /notifications/custom [post]
func GetSendCustomMessageFunc(srv service.Service) echo.HandlerFunc {

	return func(c echo.Context) error {
		req := new(dto.CustomMessage)
		if err := c.Bind(req); err != nil {
			return err
		}

		status, err := srv.SendCustomMessage(*req)
		return respondMessage(c, status, err)
	}
}

// CheckMessage godoc
// @Summary Check message
// @Description Returns the message with the given id, re-polling the gateway for a delivery receipt
// @Produce json
// @Param id path int true "Message id"
// @Success 200 {object} dto.MessageStatus
// @Failure 404 "error description"
// @Router /notifications/{id} [get]
func GetCheckMessageFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")

		id64, err := strconv.ParseUint(id, 10, 32)
		if err != nil {
			return err
		}

		status, err := srv.CheckMessageStatus(uint32(id64))
		if err != nil {
			if err.Error() == "not found" {
				return c.String(http.StatusNotFound, "Message not found "+id)
			}
			log.Error.Println(err)
			return c.String(http.StatusInternalServerError, "System malfunction. Please, try later")
		}

		return c.JSON(http.StatusOK, status)
	}
}

// ListMessages godoc
// @Summary List messages
// @Description Returns all recorded messages
// @Produce json
// @Success 200 {array} dto.MessageStatus
// @Router /notifications [get]
func GetListMessagesFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		messages, err := srv.Messages()
		if err != nil {
			log.Error.Println(err)
			return c.String(http.StatusInternalServerError, "System malfunction. Please, try later")
		}

		return c.JSON(http.StatusOK, messages)
	}
}

// ProviderHealth godoc
// @Summary Provider health
// @Description Returns rolling health records of the sms gateways
// @Produce json
// @Success 200 {array} dto.ProviderHealth
// @Router /providers/health [get]
func GetProviderHealthFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		records, err := srv.ProviderHealth()
		if err != nil {
			log.Error.Println(err)
			return c.String(http.StatusInternalServerError, "System malfunction. Please, try later")
		}

		return c.JSON(http.StatusOK, records)
	}
}

func respondMessage(c echo.Context, status dto.MessageStatus, err error) error {
	if err != nil {
		switch err.(type) {
		case *service.InvalidPayloadErr:
			return c.String(http.StatusBadRequest, err.Error())
		default:
			log.Error.Println(err)
			return c.String(http.StatusInternalServerError, "System malfunction. Please, try later")
		}
	}

	return c.JSON(http.StatusOK, status)
}
