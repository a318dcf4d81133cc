package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"gorm.io/gorm"

	"github.com/pageza/sofra/backend/config"
	"github.com/pageza/sofra/backend/internal/model"
)

// ObjectGetter is the part of the S3 client the catalog loader needs
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Dependencies carries the clients a non-builtin catalog source reads from
type Dependencies struct {
	DB *gorm.DB
	S3 ObjectGetter
}

// Load builds the catalog from the source named in cfg. It runs once at startup.
func Load(ctx context.Context, cfg *config.Config, deps Dependencies) (*Catalog, error) {
	var (
		c   *Catalog
		err error
	)

	switch cfg.CatalogSource {
	case config.CatalogBuiltin, "":
		c = Builtin()
	case config.CatalogFile:
		c, err = FromFile(cfg.CatalogFile)
	case config.CatalogDatabase:
		if deps.DB == nil {
			return nil, errors.New("database catalog source requires a database connection")
		}
		c, err = FromDatabase(ctx, deps.DB)
	case config.CatalogS3:
		if deps.S3 == nil {
			return nil, errors.New("s3 catalog source requires an S3 client")
		}
		c, err = FromS3(ctx, deps.S3, cfg.S3BucketName, cfg.S3CatalogKey)
	default:
		return nil, fmt.Errorf("unknown catalog source: %s", cfg.CatalogSource)
	}
	if err != nil {
		return nil, err
	}

	log.Printf("Loaded %d dishes from %s catalog", c.Len(), cfg.CatalogSource)
	return c, nil
}

// FromJSON decodes a JSON array of dishes
func FromJSON(r io.Reader) (*Catalog, error) {
	var dishes []model.Dish
	if err := json.NewDecoder(r).Decode(&dishes); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return New(dishes)
}

// FromFile reads a JSON catalog from disk
func FromFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	return FromJSON(f)
}

// FromDatabase reads the dishes table ordered by id
func FromDatabase(ctx context.Context, db *gorm.DB) (*Catalog, error) {
	var dishes []model.Dish
	if err := db.WithContext(ctx).Order("id").Find(&dishes).Error; err != nil {
		return nil, fmt.Errorf("failed to read dishes: %w", err)
	}
	return New(dishes)
}

// FromS3 reads a JSON catalog object from a bucket
func FromS3(ctx context.Context, client ObjectGetter, bucket, key string) (*Catalog, error) {
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	return FromJSON(out.Body)
}
