// Package api exposes the check-in store over HTTP.
package api

import (
	"github.com/MyelinBots/stillalive-go/internal/api/handler"
	"github.com/MyelinBots/stillalive-go/internal/api/middleware"
	"github.com/MyelinBots/stillalive-go/internal/healthcheck"
	"github.com/MyelinBots/stillalive-go/internal/services/auth"
	"github.com/MyelinBots/stillalive-go/internal/services/calendar_view"
	"github.com/MyelinBots/stillalive-go/internal/services/checkins"
	"github.com/MyelinBots/stillalive-go/internal/services/users"
	"github.com/gin-gonic/gin"
)

type HandlersGroup struct {
	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	CheckinHandler  *handler.CheckinHandler
	CalendarHandler *handler.CalendarHandler
}

func NewHandlersGroup(authenticator auth.Authenticator, userService users.Service, checkinService checkins.Service, view *calendar_view.View) *HandlersGroup {
	return &HandlersGroup{
		AuthHandler:     handler.NewAuthHandler(authenticator),
		UserHandler:     handler.NewUserHandler(userService, authenticator),
		CheckinHandler:  handler.NewCheckinHandler(checkinService, view),
		CalendarHandler: handler.NewCalendarHandler(view),
	}
}

func SetupRouter(group *HandlersGroup, tokens *auth.Tokens, pinger healthcheck.Pinger) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"127.0.0.1"})

	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(gin.Recovery())

	health := gin.WrapF(healthcheck.HealthCheckHandler(pinger))
	r.GET("/health", health)
	r.HEAD("/health", health)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/login", group.AuthHandler.Login)
		apiGroup.GET("/users", group.UserHandler.List)

		apiGroup.GET("/checkins", group.CheckinHandler.All)
		apiGroup.GET("/checkins/month/:year/:month", group.CheckinHandler.Month)
		apiGroup.GET("/checkins/day/:date", group.CheckinHandler.Day)
		apiGroup.GET("/calendar/:year/:month", group.CalendarHandler.Month)

		meGroup := apiGroup.Group("/me")
		meGroup.Use(middleware.AuthMiddleware(tokens))
		{
			meGroup.GET("/checkins/:date", group.CheckinHandler.Mine)
			meGroup.PUT("/checkins/:date", group.CheckinHandler.Save)
			meGroup.DELETE("/checkins/:date", group.CheckinHandler.Delete)
			meGroup.PUT("/password", group.UserHandler.ChangePassword)
			meGroup.PUT("/color", group.UserHandler.ChangeColor)
		}
	}

	return r
}
