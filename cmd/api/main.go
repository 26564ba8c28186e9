package main

import (
	"context"
	"net/http"

	"maogo-api/docs"
	"maogo-api/internal/config"
	"maogo-api/internal/handler"
	"maogo-api/internal/repository"
	"maogo-api/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			API MaoGo - Direcciones Valverde
//	@version		2.0
//	@description	Address registry and trip fare estimates for Mao, Valverde.

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)

	registryService := service.NewRegistryService(repo)
	fareService := service.NewFareService(repo)

	addressHandler := handler.NewAddressHandler(registryService)
	rideHandler := handler.NewRideHandler(fareService)

	r := gin.Default()

	// The field-collection pages are served from arbitrary origins.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "API MaoGo - Sistema de Direcciones",
			"version": "2.0",
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/addresses", addressHandler.List)
	r.GET("/addresses/:code", addressHandler.Get)
	r.GET("/sectors", addressHandler.ListSectors)
	r.POST("/addresses/insert", addressHandler.Insert)
	r.POST("/addresses/campo", addressHandler.Insert)
	r.PUT("/addresses/:code", addressHandler.Update)
	r.POST("/ride/estimate", rideHandler.Estimate)

	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.Run(config.ServerAddress)
}
