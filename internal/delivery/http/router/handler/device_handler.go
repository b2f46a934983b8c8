package handler

import (
	"net/http"

	"stockroom/internal/delivery/http/middleware"
	"stockroom/internal/delivery/http/response"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeviceHandler holds dependencies for admin device handlers.
type DeviceHandler struct {
	uc usecase.DeviceUsecase
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.DeviceUsecase) *DeviceHandler {
	return &DeviceHandler{uc: uc}
}

type registerDeviceRequest struct {
	FCMToken string `json:"fcmToken" validate:"required"`
	DeviceID string `json:"deviceId" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// authenticatedUserID reads the user ID the auth middleware stored.
func authenticatedUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.KeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrInternal
	}

	return userID, nil
}

// Register enrolls the calling admin's device for low-stock alerts.
func (h *DeviceHandler) Register(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var req registerDeviceRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	device, err := h.uc.RegisterDevice(c.Request().Context(), usecase.RegisterDeviceInput{
		UserID:   userID,
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, device)
}

// List returns the calling admin's registered devices.
func (h *DeviceHandler) List(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	devices, err := h.uc.ListDevices(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{"devices": devices})
}

// Deactivate stops a device from receiving alerts.
func (h *DeviceHandler) Deactivate(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrDeviceNotFound
	}

	if err := h.uc.DeactivateDevice(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Device deactivated.")
}
