package main

import (
	"flag"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"fotografica/admin"
	"fotografica/common"
	"fotografica/content"
	"fotografica/database"
	"fotografica/loggers"
	"fotografica/site"
)

func main() {
	seed := flag.Bool("seed", false, "insert the admin account and sample content, then continue serving")
	flag.Parse()

	loggers.Init()

	cfg, err := common.LoadConfig()
	if err != nil {
		loggers.Logger.Fatal(err)
	}

	db := common.ConnectDb(cfg.DBFile)
	if db == nil {
		loggers.Logger.Fatal("Failed to connect to database")
	}

	if err := database.RunMigrations(db); err != nil {
		loggers.Logger.Fatal("Failed to run migrations: ", err)
	}

	if *seed {
		if err := database.Seed(db, cfg); err != nil {
			loggers.Logger.Fatal("Failed to seed database: ", err)
		}
	}

	router := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
	})
	router.Use(sessions.Sessions("fotografica-session", store))

	router.LoadHTMLGlob("*/views/*.html")
	router.Static("/static", "./static")

	contentStore := content.NewStore(db)

	siteModule := site.NewSiteModule(contentStore)
	siteModule.RegisterRoutes(router)

	adminModule := admin.NewAdminModule(contentStore, cfg)
	adminModule.RegisterRoutes(router)

	loggers.Logger.Infof("Starting server on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		loggers.Logger.Fatal("Failed to start server: ", err)
	}
}
