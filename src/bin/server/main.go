package main

import (
	"api.sahayatri.app/src/pkg/api_server"
	"api.sahayatri.app/src/pkg/errs"
	"api.sahayatri.app/src/pkg/global"
	"api.sahayatri.app/src/pkg/models/favourites"

	"github.com/gin-contrib/cors"
)

func main() {
	// Connect to Mongo
	global.Init()
	defer global.Deinit()

	err := favourites.EnsureIndexes()
	errs.Invariant(err == nil, "can't create favourites indexes")

	// Configure CORS
	global.GIN_ROUTER.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "PATCH", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api_server.RegisterAllRoutes(global.GIN_ROUTER)
	err = global.GIN_ROUTER.Run()
	if err != nil {
		return
	}
}
