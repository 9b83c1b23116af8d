package main

import (
	"fmt"
	"net/http"

	"freightdash/config"
	"freightdash/db"
	"freightdash/db/mongo"
	"freightdash/db/postgres"
	"freightdash/events"
	"freightdash/handlers"
	"freightdash/mockdata"
	"freightdash/repository"
	"freightdash/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	var shipmentRepo repository.ShipmentRepository
	var userRepo repository.UserRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		shipmentRepo = repository.NewPostgresShipmentRepo(pg.Conn)
		userRepo = repository.NewPostgresUserRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		shipmentRepo = repository.NewMongoShipmentRepo(mg.Client)
		userRepo = repository.NewMongoUserRepo(mg.Client)

	case db.Memory:
		shipmentRepo = repository.NewMemoryShipmentRepo(mockdata.Shipments(cfg.MockShipments))
		userRepo = repository.NewMemoryUserRepo()

	default:
		panic("DB_TYPE not supported")
	}

	presetRepo := repository.NewMemoryPresetRepo()
	columnRepo := repository.NewMemoryColumnRepo()

	// Kafka stays optional: without a broker the producer is a no-op.
	var producer *events.Producer
	if cfg.KafkaBroker != "" {
		producer = events.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic)
		defer producer.Close()
	}

	// Handlers
	userHandler := &handlers.UserHandler{
		Repo:          userRepo,
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
		JWTSecret:     cfg.JWTSecret,
	}
	shipmentHandler := &handlers.ShipmentHandler{Repo: shipmentRepo, Producer: producer}
	viewHandler := &handlers.ViewHandler{Repo: shipmentRepo, Columns: columnRepo}
	presetHandler := &handlers.PresetHandler{Repo: presetRepo}
	columnHandler := &handlers.ColumnHandler{Repo: columnRepo}
	uploadHandler := handlers.NewUploadHandler()
	exportHandler := &handlers.ExportHandler{Repo: shipmentRepo, Columns: columnRepo}
	documentHandler := &handlers.DocumentHandler{Repo: shipmentRepo}
	trackingHandler := &handlers.TrackingHandler{Repo: shipmentRepo}
	mapHandler := &handlers.MapHandler{Repo: shipmentRepo}

	routes.SetupRoutes(routes.Deps{
		User:      userHandler,
		Shipment:  shipmentHandler,
		View:      viewHandler,
		Preset:    presetHandler,
		Column:    columnHandler,
		Upload:    uploadHandler,
		Export:    exportHandler,
		Document:  documentHandler,
		Tracking:  trackingHandler,
		Map:       mapHandler,
		JWTSecret: cfg.JWTSecret,
	})

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
