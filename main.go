package main

import (
	"context"
	"log"
	"os"
	"time"

	"restaurantes-api/config"
	httpapi "restaurantes-api/internal/api/http"
	"restaurantes-api/internal/service"
	"restaurantes-api/internal/storage"
)

func main() {
	ctx := context.Background()

	client, db := config.MustInitMongo(ctx)
	defer client.Disconnect(ctx)

	repo := storage.NewMongoRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("ensuring indexes: %v", err)
	}

	imageStore, err := storage.NewGridFSImageStore(db)
	if err != nil {
		log.Fatalf("initializing image store: %v", err)
	}

	cache := storage.NewRedisRankingCache(config.MustInitRedis(), 60*time.Second)

	var publisher service.OrderPublisher
	if writer := config.NewKafkaWriter("order-events"); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	handler := httpapi.NewHandler(
		service.NewRestaurantService(repo),
		service.NewUserService(repo, repo),
		service.NewMenuService(repo, imageStore),
		service.NewOrderService(repo, repo, publisher),
		service.NewReviewService(repo, cache),
		service.NewRankingService(repo, repo, cache),
		service.NewImageService(imageStore, repo),
	)

	addr := ":" + os.Getenv("PORT")
	if addr == ":" {
		addr = ":8080"
	}
	log.Fatal(httpapi.StartServer(addr, handler))
}
