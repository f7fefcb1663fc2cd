package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"taly/services/calendar"
	"taly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler exposes the availability endpoints behind a booking page.
type CalendarHandler struct {
	Service calendar.CalendarService
}

func NewCalendarHandler(svc calendar.CalendarService) *CalendarHandler {
	return &CalendarHandler{Service: svc}
}

// BlockedDatesHandler answers the month query the booking calendar issues:
// which weekdays are never available and which dates are fully booked.
func (h *CalendarHandler) BlockedDatesHandler(c *gin.Context) {
	username := c.Param("username")

	year, errYear := strconv.Atoi(c.Query("year"))
	month, errMonth := strconv.Atoi(c.Query("month"))
	if errYear != nil || errMonth != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month query params are required"})
		return
	}

	blocked, err := h.Service.BlockedDates(c.Request.Context(), username, year, month)
	if err != nil {
		h.renderCalendarError(c, err)
		return
	}

	c.JSON(http.StatusOK, blocked)
}

// DayAvailabilityHandler lists the possible and still-open hour slots of one
// day.
func (h *CalendarHandler) DayAvailabilityHandler(c *gin.Context) {
	username := c.Param("username")

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query param must be YYYY-MM-DD"})
		return
	}

	availability, err := h.Service.DayAvailability(c.Request.Context(), username, date, time.Now().UTC())
	if err != nil {
		h.renderCalendarError(c, err)
		return
	}

	c.JSON(http.StatusOK, availability)
}

// MonthGridHandler returns the rendered week/day grid for one month. An empty
// grid means the availability data could not be loaded, not that the host has
// no availability.
func (h *CalendarHandler) MonthGridHandler(c *gin.Context) {
	username := c.Param("username")

	year, errYear := strconv.Atoi(c.Query("year"))
	month, errMonth := strconv.Atoi(c.Query("month"))
	if errYear != nil || errMonth != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month query params are required"})
		return
	}

	weeks, err := h.Service.MonthGrid(c.Request.Context(), username, year, month, time.Now().UTC())
	if err != nil {
		h.renderCalendarError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"weeks": weeks})
}

func (h *CalendarHandler) renderCalendarError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, calendar.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, calendar.ErrInvalidMonth):
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 1 and 12"})
	default:
		utils.GetLogger().Error("Calendar query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load calendar data"})
	}
}
