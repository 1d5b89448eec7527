package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"foodrepublic/internal/config"
	"foodrepublic/internal/db"
	"foodrepublic/internal/importer"
	menurepo "foodrepublic/internal/repository/menu"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to menu CSV file (category,item_name,item_price)")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, menurepo.NewPostgres(pool, nil))

	start := time.Now()
	res, err := imp.Run(ctx)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d menu items (%d duplicates skipped) in %s\n",
		res.Imported, res.Skipped, time.Since(start).Truncate(time.Millisecond))
}
