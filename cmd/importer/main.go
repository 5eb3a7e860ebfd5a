package main

import (
	"context"
	"flag"
	"log"
	"os"

	"backoffice-api/internal/config"
	"backoffice-api/internal/db"
	"backoffice-api/internal/importer"
	clientrepo "backoffice-api/internal/repository/client"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	path := flag.String("file", "", "path to the clients CSV export")
	flag.Parse()

	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	if *path == "" {
		logger.Fatal("usage: importer -file clients.csv")
	}

	f, err := os.Open(*path)
	if err != nil {
		logger.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	cfg := config.FromEnv()
	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	repo := clientrepo.NewPostgres(pool, logger)
	imp := importer.NewCSVImporter(f, repo)

	n, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d clients: %v", n, err)
	}
	logger.Printf("imported %d clients", n)
}
