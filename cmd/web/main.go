package main

import "acsp_backend/internal/app"

func main() {
	app.Run()
}
