package main

import "newsroom_backend/internal/app"

func main() {
	app.Run()
}
