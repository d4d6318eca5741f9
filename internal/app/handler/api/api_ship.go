package api

import (
	"errors"
	"net/http"
	"strconv"

	"space_ships/internal/app/ds"
	"space_ships/internal/app/filter"
	"space_ships/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ShipHandler struct {
	Service interface {
		Create(in ds.ShipInput) (*ds.Ship, error)
		GetByID(id int64) (*ds.Ship, error)
		Update(id int64, patch ds.ShipPatch) (*ds.Ship, error)
		DeleteByID(id int64) error
		List(p filter.Predicate, page ds.Page) ([]ds.Ship, error)
		Count(p filter.Predicate) (int64, error)
	}
	DefaultPageSize int
}

// errorResponse переводит ошибку сервиса в HTTP статус
func errorResponse(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidArgument), errors.Is(err, service.ErrBadRequest):
		code = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		code = http.StatusNotFound
	}
	if code == http.StatusInternalServerError {
		logrus.Error(err.Error())
	}
	c.JSON(code, gin.H{
		"error": err.Error(),
	})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": err.Error(),
	})
}

func shipID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// @Summary List ships
// @Description Page of ships matching every supplied filter, sorted ascending
// @Tags ships
// @Produce json
// @Param name query string false "Name substring"
// @Param planet query string false "Planet substring"
// @Param shipType query string false "TRANSPORT, MILITARY or MERCHANT"
// @Param after query int false "Produced at or after, epoch millis"
// @Param before query int false "Produced at or before, epoch millis"
// @Param isUsed query bool false "Used ships only / new ships only"
// @Param minSpeed query number false "Minimum speed"
// @Param maxSpeed query number false "Maximum speed"
// @Param minCrewSize query int false "Minimum crew size"
// @Param maxCrewSize query int false "Maximum crew size"
// @Param minRating query number false "Minimum rating"
// @Param maxRating query number false "Maximum rating"
// @Param order query string false "ID, SPEED, DATE or RATING"
// @Param pageNumber query int false "Zero based page number"
// @Param pageSize query int false "Page size"
// @Success 200 {array} ds.Ship
// @Failure 400 {object} object "error: message"
// @Router /rest/ships [get]
func (h *ShipHandler) GetShipsAPI(c *gin.Context) {
	params, err := filterParams(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	page, err := pageParams(c, h.DefaultPageSize)
	if err != nil {
		badRequest(c, err)
		return
	}

	ships, err := h.Service.List(params.Predicate(), page)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, ships)
}

// @Summary Count ships
// @Description Number of ships matching every supplied filter
// @Tags ships
// @Produce json
// @Param name query string false "Name substring"
// @Param planet query string false "Planet substring"
// @Param shipType query string false "TRANSPORT, MILITARY or MERCHANT"
// @Param after query int false "Produced at or after, epoch millis"
// @Param before query int false "Produced at or before, epoch millis"
// @Param isUsed query bool false "Used flag"
// @Param minSpeed query number false "Minimum speed"
// @Param maxSpeed query number false "Maximum speed"
// @Param minCrewSize query int false "Minimum crew size"
// @Param maxCrewSize query int false "Maximum crew size"
// @Param minRating query number false "Minimum rating"
// @Param maxRating query number false "Maximum rating"
// @Success 200 {integer} integer
// @Failure 400 {object} object "error: message"
// @Router /rest/ships/count [get]
func (h *ShipHandler) GetShipsCountAPI(c *gin.Context) {
	params, err := filterParams(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	count, err := h.Service.Count(params.Predicate())
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, count)
}

// @Summary Get ship
// @Tags ships
// @Produce json
// @Param id path int true "Ship ID"
// @Success 200 {object} ds.Ship
// @Failure 400 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /rest/ships/{id} [get]
func (h *ShipHandler) GetShipAPI(c *gin.Context) {
	id, err := shipID(c)
	if err != nil {
		badRequest(c, errors.New("invalid ship ID"))
		return
	}

	ship, err := h.Service.GetByID(id)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, ship)
}

// @Summary Create ship
// @Description Validates the ship, rounds speed and computes the rating
// @Tags ships
// @Accept json
// @Produce json
// @Param ship body ds.ShipInput true "Ship"
// @Success 200 {object} ds.Ship
// @Failure 400 {object} object "error: message"
// @Router /rest/ships [post]
func (h *ShipHandler) CreateShipAPI(c *gin.Context) {
	var in ds.ShipInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}

	ship, err := h.Service.Create(in)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, ship)
}

// @Summary Update ship
// @Description Partial update: absent fields stay unchanged, the rating is recomputed
// @Tags ships
// @Accept json
// @Produce json
// @Param id path int true "Ship ID"
// @Param ship body ds.ShipPatch true "Fields to change"
// @Success 200 {object} ds.Ship
// @Failure 400 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /rest/ships/{id} [post]
func (h *ShipHandler) UpdateShipAPI(c *gin.Context) {
	id, err := shipID(c)
	if err != nil {
		badRequest(c, errors.New("invalid ship ID"))
		return
	}

	var patch ds.ShipPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}

	ship, err := h.Service.Update(id, patch)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, ship)
}

// @Summary Delete ship
// @Tags ships
// @Param id path int true "Ship ID"
// @Success 200
// @Failure 400 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /rest/ships/{id} [delete]
func (h *ShipHandler) DeleteShipAPI(c *gin.Context) {
	id, err := shipID(c)
	if err != nil {
		badRequest(c, errors.New("invalid ship ID"))
		return
	}

	if err := h.Service.DeleteByID(id); err != nil {
		errorResponse(c, err)
		return
	}

	c.Status(http.StatusOK)
}
