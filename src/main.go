package main

import (
	"api.sahayatri.app/src/pkg/api_server"
	"api.sahayatri.app/src/pkg/errs"
	"api.sahayatri.app/src/pkg/global"
	"api.sahayatri.app/src/pkg/models/favourites"
)

func main() {
	global.Init()
	defer global.Deinit()

	// the duplicate guard on favourites needs its index
	err := favourites.EnsureIndexes()
	errs.Invariant(err == nil, "can't create favourites indexes")

	// Register all routes
	api_server.RegisterAllRoutes(global.GIN_ROUTER)

	// Start the server
	global.GIN_ROUTER.Run(":8080")
}
