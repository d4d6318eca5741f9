package handler

import (
	"net/http"

	"space_ships/internal/app/handler/api"
	"space_ships/internal/app/handler/middleware"
	"space_ships/internal/app/service"
	"space_ships/internal/app/utils"

	_ "space_ships/docs" // Swagger docs

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Pinger - проверка доступности хранилища для /health
type Pinger interface {
	Ping() error
}

type Handler struct {
	ShipAPIHandler *api.ShipHandler
	Pinger         Pinger
	JwtKey         []byte
}

func NewHandler(svc *service.ShipService, defaultPageSize int, jwtKey string) *Handler {
	return &Handler{
		ShipAPIHandler: &api.ShipHandler{Service: svc, DefaultPageSize: defaultPageSize},
		JwtKey:         []byte(jwtKey),
	}
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiGroup := router.Group("/rest")
	{
		apiGroup.GET("/ships", h.ShipAPIHandler.GetShipsAPI)
		apiGroup.GET("/ships/count", h.ShipAPIHandler.GetShipsCountAPI)
		apiGroup.GET("/ships/:id", h.ShipAPIHandler.GetShipAPI)

		// изменения реестра, при заданном JwtKey только для оператора
		writeGroup := apiGroup.Group("/", middleware.AuthMiddleware(h.JwtKey, utils.RoleOperator))
		{
			writeGroup.POST("/ships", h.ShipAPIHandler.CreateShipAPI)
			writeGroup.POST("/ships/:id", h.ShipAPIHandler.UpdateShipAPI)
			writeGroup.PUT("/ships/:id", h.ShipAPIHandler.UpdateShipAPI)
			writeGroup.DELETE("/ships/:id", h.ShipAPIHandler.DeleteShipAPI)
		}
	}
}

// Health - GET /health
func (h *Handler) Health(c *gin.Context) {
	if h.Pinger != nil {
		if err := h.Pinger.Ping(); err != nil {
			h.errorHandler(c, http.StatusServiceUnavailable, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) errorHandler(c *gin.Context, code int, err error) {
	logrus.Error(err.Error())
	c.JSON(code, gin.H{
		"description": err.Error(),
	})
}
