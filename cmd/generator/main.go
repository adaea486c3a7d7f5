// Command generator seeds the database with synthetic restaurants, users,
// articulos, ordenes and reseñas for local development.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"restaurantes-api/config"
	"restaurantes-api/internal/domain"
	"restaurantes-api/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	numRestaurants = flag.Int("restaurantes", 20, "number of restaurants to create")
	numUsers       = flag.Int("usuarios", 50, "number of users to create")
	numOrders      = flag.Int("ordenes", 200, "number of orders to create")
	numReviews     = flag.Int("resenas", 150, "number of reviews to create")
	drop           = flag.Bool("drop", false, "drop existing collections first")
	seed           = flag.Int64("seed", 0, "random seed (0 uses the current time)")
)

var (
	cuisines   = []string{"mexicana", "italiana", "japonesa", "china", "vegetariana", "mariscos", "tacos", "hamburguesas"}
	cities     = []string{"Ciudad de México", "Guadalajara", "Monterrey", "Puebla", "Tijuana", "Mérida"}
	dishNames  = []string{"Tacos al pastor", "Pizza margarita", "Ramen", "Ensalada césar", "Ceviche", "Hamburguesa clásica", "Pozole", "Sushi roll", "Enchiladas verdes", "Torta ahogada"}
	firstNames = []string{"Ana", "Luis", "María", "Carlos", "Sofía", "Jorge", "Lucía", "Pedro", "Elena", "Miguel"}
	lastNames  = []string{"García", "Hernández", "López", "Martínez", "Pérez", "Sánchez", "Ramírez", "Torres"}
	comments   = []string{"Excelente comida", "Muy buen servicio", "Regular, puede mejorar", "Volveré pronto", "La entrega tardó mucho", "Todo delicioso"}
	statuses   = []string{domain.StatusPending, domain.StatusPreparing, domain.StatusDelivered}
)

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	ctx := context.Background()
	client, db := config.MustInitMongo(ctx)
	defer client.Disconnect(ctx)

	if *drop {
		for _, name := range []string{"restaurantes", "usuarios", "articulos", "ordenes", "resenas"} {
			if err := db.Collection(name).Drop(ctx); err != nil {
				log.Fatalf("dropping %s: %v", name, err)
			}
		}
		log.Println("dropped existing collections")
	}

	repo := storage.NewMongoRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("ensuring indexes: %v", err)
	}

	restaurantIDs, menus := seedRestaurants(ctx, rng, repo)
	userIDs := seedUsers(ctx, rng, repo, restaurantIDs)
	seedOrders(ctx, rng, repo, userIDs, restaurantIDs, menus)
	seedReviews(ctx, rng, repo, userIDs, restaurantIDs)

	log.Printf("seeded %d restaurantes, %d usuarios, %d ordenes, %d reseñas (seed %d)",
		len(restaurantIDs), len(userIDs), *numOrders, *numReviews, *seed)
}

func seedRestaurants(ctx context.Context, rng *rand.Rand, repo *storage.MongoRepository) ([]primitive.ObjectID, map[primitive.ObjectID][]domain.MenuItem) {
	ids := make([]primitive.ObjectID, 0, *numRestaurants)
	menus := make(map[primitive.ObjectID][]domain.MenuItem)

	for i := 0; i < *numRestaurants; i++ {
		rest := domain.Restaurant{
			Nombre: fmt.Sprintf("Restaurante %s %d", pick(rng, cuisines), i+1),
			Direccion: domain.Direccion{
				Calle:       fmt.Sprintf("Calle %d #%d", rng.Intn(200)+1, rng.Intn(900)+100),
				Ciudad:      pick(rng, cities),
				Coordenadas: []float64{-99.2 + rng.Float64(), 19.3 + rng.Float64()},
			},
			TipoComida: []string{pick(rng, cuisines)},
			Horario:    domain.Horario{Abre: "09:00", Cierra: "22:00"},
		}
		id, err := repo.CreateRestaurant(ctx, &rest)
		if err != nil {
			log.Fatalf("creating restaurant: %v", err)
		}
		ids = append(ids, id)

		// Every restaurant gets at least two articulos so orders always
		// have something to reference.
		items := make([]domain.MenuItem, 2+rng.Intn(4))
		for j := range items {
			items[j] = domain.MenuItem{
				RestauranteID: id,
				Nombre:        pick(rng, dishNames),
				Descripcion:   "Preparado al momento",
				Precio:        (rng.Intn(30) + 5) * 10,
				Tipo:          []string{pick(rng, cuisines)},
			}
		}
		itemIDs, err := repo.InsertMenuItems(ctx, items)
		if err != nil {
			log.Fatalf("creating articulos: %v", err)
		}
		for j := range items {
			items[j].ID = itemIDs[j]
		}
		menus[id] = items
	}
	return ids, menus
}

func seedUsers(ctx context.Context, rng *rand.Rand, repo *storage.MongoRepository, restaurantIDs []primitive.ObjectID) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, *numUsers)
	for i := 0; i < *numUsers; i++ {
		nombre := pick(rng, firstNames) + " " + pick(rng, lastNames)
		user := domain.User{
			Nombre:    nombre,
			Email:     fmt.Sprintf("usuario%d@example.com", i+1),
			Favoritos: []primitive.ObjectID{},
		}
		id, err := repo.CreateUser(ctx, &user)
		if err != nil {
			log.Fatalf("creating user: %v", err)
		}
		for j := 0; j < rng.Intn(3); j++ {
			if _, err := repo.AddFavorite(ctx, id, pick(rng, restaurantIDs)); err != nil {
				log.Fatalf("adding favorite: %v", err)
			}
		}
		ids = append(ids, id)
	}
	return ids
}

func seedOrders(ctx context.Context, rng *rand.Rand, repo *storage.MongoRepository, userIDs, restaurantIDs []primitive.ObjectID, menus map[primitive.ObjectID][]domain.MenuItem) {
	for i := 0; i < *numOrders; i++ {
		restID := pick(rng, restaurantIDs)
		menu := menus[restID]

		pedido := make([]domain.LineItem, 1+rng.Intn(3))
		total := 0
		for j := range pedido {
			item := pick(rng, menu)
			cantidad := rng.Intn(3) + 1
			pedido[j] = domain.LineItem{
				ArticuloID: item.ID,
				Nombre:     item.Nombre,
				Cantidad:   cantidad,
				Precio:     item.Precio,
			}
			total += item.Precio * cantidad
		}

		order := domain.Order{
			UsuarioID:     pick(rng, userIDs),
			RestauranteID: restID,
			Fecha:         time.Now().UTC().AddDate(0, 0, -rng.Intn(90)),
			Estado:        pick(rng, statuses),
			Pedido:        pedido,
			Total:         total,
		}
		if _, err := repo.CreateOrder(ctx, &order); err != nil {
			log.Fatalf("creating order: %v", err)
		}
	}
}

func seedReviews(ctx context.Context, rng *rand.Rand, repo *storage.MongoRepository, userIDs, restaurantIDs []primitive.ObjectID) {
	for i := 0; i < *numReviews; i++ {
		review := domain.Review{
			UsuarioID:     pick(rng, userIDs),
			RestauranteID: pick(rng, restaurantIDs),
			Puntaje:       rng.Intn(5) + 1,
			Comentario:    pick(rng, comments),
			Fecha:         time.Now().UTC().AddDate(0, 0, -rng.Intn(90)),
		}
		if _, err := repo.CreateReview(ctx, &review); err != nil {
			log.Fatalf("creating review: %v", err)
		}
	}
}

func pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.Intn(len(values))]
}
