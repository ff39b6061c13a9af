package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"yatrasetu/cmd/fx/config_fx"
	"yatrasetu/cmd/fx/db_fx"
	"yatrasetu/cmd/fx/destination_fx"
	"yatrasetu/cmd/fx/distance_fx"
	"yatrasetu/cmd/fx/itinerary_fx"
	"yatrasetu/cmd/fx/llm_fx"
	"yatrasetu/cmd/fx/memcache_fx"
	"yatrasetu/cmd/fx/review_fx"
	"yatrasetu/cmd/fx/speech_fx"
	"yatrasetu/cmd/fx/translate_fx"
	"yatrasetu/internal/api/controllers"
	"yatrasetu/internal/config"
	"yatrasetu/pkg/middleware"
	"yatrasetu/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		db_fx.Module,
		llm_fx.Module,
		memcache_fx.Module,
		itinerary_fx.Module,
		translate_fx.Module,
		speech_fx.Module,
		distance_fx.Module,
		destination_fx.Module,
		review_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("failed to serve", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type RouterParams struct {
	fx.In

	Logger                *zap.Logger
	Tokens                *utils.TokenManager
	ItineraryController   *controllers.ItineraryController
	TranslateController   *controllers.TranslateController
	DestinationController *controllers.DestinationController
	VoiceController       *controllers.VoiceController
	ReviewController      *controllers.ReviewController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	r.GET("/health", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
	})

	itineraryGroup := r.Group("/itineraries")
	itineraryGroup.POST("/generate", p.ItineraryController.GenerateItinerary)
	itineraryGroup.GET("/themes", p.ItineraryController.ListThemes)
	itineraryGroup.GET("/:id", p.ItineraryController.GetItinerary)

	translateGroup := r.Group("/translate")
	translateGroup.POST("", p.TranslateController.Translate)
	translateGroup.POST("/detect", p.TranslateController.DetectLanguage)
	translateGroup.GET("/languages", p.TranslateController.ListLanguages)

	destinationGroup := r.Group("/destinations")
	destinationGroup.GET("", p.DestinationController.ListDestinations)
	destinationGroup.GET("/categories", p.DestinationController.ListCategories)
	destinationGroup.GET("/:id", p.DestinationController.GetDestination)

	voiceGroup := r.Group("/voice")
	voiceGroup.POST("/directions", p.VoiceController.Directions)
	voiceGroup.GET("/capabilities", p.VoiceController.Capabilities)

	reviewGroup := r.Group("/reviews")
	reviewGroup.GET("", p.ReviewController.ListReviews)
	reviewGroup.POST("", middleware.JWTAuthMiddleware(p.Tokens), p.ReviewController.AddReview)
	reviewGroup.POST("/:id/helpful", middleware.JWTAuthMiddleware(p.Tokens), p.ReviewController.MarkHelpful)
	reviewGroup.DELETE("/:id", middleware.JWTAuthMiddleware(p.Tokens), middleware.RoleMiddleware(middleware.RoleAdmin), p.ReviewController.RemoveReview)
}
