package main

import (
	"context"
	"log"

	"github.com/ArunaK-netizen/VIT-Chennai-Events/internal/app/bootstrap"
	"github.com/dalemusser/waffle/app"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		log.Fatal(err)
	}
}
