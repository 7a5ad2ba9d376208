package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"smartenum/internal/api"
	"smartenum/internal/config"
)

func main() {
	cfg, err := config.Load("config.json", os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	catalog, err := loadCatalog(cfg, log.Default())
	if err != nil {
		log.Fatalf("%v", err)
	}

	log.Printf("starting smartenum server on :%s", cfg.Port)
	if err := api.RunServer(":"+cfg.Port, api.NewService(catalog)); err != nil {
		log.Fatalf("server: %v", err)
	}
}
