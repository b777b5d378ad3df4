package main

import (
	"fmt"
	"log"

	"github.com/Krypton102019/dk-deli/configs"
	"github.com/Krypton102019/dk-deli/middlewares"
	"github.com/Krypton102019/dk-deli/repository"
	"github.com/Krypton102019/dk-deli/routes"
	"github.com/Krypton102019/dk-deli/store"
	"github.com/Krypton102019/dk-deli/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	// State: load once, write through after every mutation
	stateRepo := repository.NewStateRepository(configs.DB(), cfg.StateKey)
	st := store.New(stateRepo)

	// Order tracking stream
	hub := ws.NewTrackHub(st)
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, st, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
