// @title           weekwise API
// @version         1.0
// @description     Backend for the weekwise weekly training plan generator.
// @BasePath        /api
package main

import (
	"os"

	"weekwise/backend/internal/app"
)

func main() {
	os.Exit(app.Run())
}
