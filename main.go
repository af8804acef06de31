package main

import "github.com/lucky7xz/labelgrid/internal/app"

func main() {
	app.Run()
}
