package main

import "giglink_backend/internal/app"

func main() {
	app.Run()
}
