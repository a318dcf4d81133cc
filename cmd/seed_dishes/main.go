package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/pageza/sofra/backend/config"
	"github.com/pageza/sofra/backend/internal/catalog"
	"github.com/pageza/sofra/backend/internal/database"
)

// seed_dishes publishes the builtin catalog to one of the other catalog sources
func main() {
	target := flag.String("target", config.CatalogDatabase, "where to write the catalog: database, s3 or file")
	out := flag.String("out", "dishes.json", "output path when -target=file")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dishes := catalog.Builtin().AllDishes()
	payload, err := json.MarshalIndent(dishes, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode catalog: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	switch *target {
	case config.CatalogDatabase:
		db, err := database.New(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close(db)

		if err := database.RunMigrations(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		if err := database.SeedDishes(db.WithContext(ctx), dishes); err != nil {
			log.Fatalf("Failed to seed dishes: %v", err)
		}
	case config.CatalogS3:
		if cfg.S3BucketName == "" {
			log.Fatal("S3_BUCKET_NAME environment variable is not set")
		}
		s3Cfg, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to configure S3: %v", err)
		}
		_, err = s3Cfg.Client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s3Cfg.BucketName),
			Key:         aws.String(s3Cfg.CatalogKey),
			Body:        bytes.NewReader(payload),
			ContentType: aws.String("application/json"),
		})
		if err != nil {
			log.Fatalf("Failed to upload catalog: %v", err)
		}
	case config.CatalogFile:
		if err := os.WriteFile(*out, append(payload, '\n'), 0644); err != nil {
			log.Fatalf("Failed to write catalog: %v", err)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown target %q\n", *target)
		flag.Usage()
		os.Exit(2)
	}

	log.Printf("Wrote %d dishes to %s", len(dishes), *target)
}
