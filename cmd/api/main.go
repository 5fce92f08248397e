package main

import (
	"context"
	"log"

	"github.com/shopilens/storefront-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("storefront API failed: %v", err)
	}
}
