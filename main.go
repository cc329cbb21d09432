package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"employability-backend/config"
	apiv1 "employability-backend/controllers/v1"
	"employability-backend/fiberlog"
	"employability-backend/initializers"
	"employability-backend/lib/ws"
	"employability-backend/middleware"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // limit of 10MB
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, x-api-key",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiV1.Use(middleware.APIKeyRequired())
	apiv1.InitAuthApiRouters(apiV1)
	apiv1.InitVacancyApiRouters(apiV1)
	apiv1.InitApplicationApiRouters(apiV1)
	apiv1.InitTechnologyApiRouters(apiV1)
	apiv1.InitAnalyticsApiRouters(apiV1)

	//пуши по откликам
	wsApp := fiber.New()
	app.Mount("/ws", wsApp)
	wsApp.Use(middleware.AuthorizationRequired())
	ws.InitWs(wsApp)

	app.Hooks().OnShutdown()

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
