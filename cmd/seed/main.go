// Seed tool: uploads the manual's images to object storage and inserts
// the initial articles. Articles come from a JSON manifest; image
// references of the form /images/manual/<file> inside article bodies
// are rewritten to the uploaded URLs.
//
// Usage:
//
//	go run ./cmd/seed -manifest seed/articles.json -images seed/images
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"manual-backend/internal/config"
	"manual-backend/internal/domains/content"
	contentRepo "manual-backend/internal/domains/content/repository"
	contentService "manual-backend/internal/domains/content/service"
	"manual-backend/internal/infrastructure/database"
	"manual-backend/internal/infrastructure/storage"
	"manual-backend/pkg/logger"
)

// seedArticle mirrors one entry of the manifest.
type seedArticle struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Order       int    `json:"order"`
	IsPublished bool   `json:"isPublished"`
	Content     string `json:"content"`
}

func main() {
	manifestPath := flag.String("manifest", "seed/articles.json", "path to the article manifest")
	imageDir := flag.String("images", "seed/images", "directory with manual images")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	logger.Init(cfg.App.Environment)

	ctx := context.Background()

	db := database.NewPostgresDB(cfg.LoadDatabaseConfig())
	if err := db.Connect(ctx); err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	store, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		log.Fatalf("❌ Failed to initialize object storage: %v", err)
	}

	// The seed tool bypasses Redis; a no-op cache keeps the
	// repository wiring unchanged.
	repo := contentRepo.NewPostgresRepository(db.Pool, noopCache{})
	svc := contentService.NewContentService(repo)

	imageMap, err := uploadImages(ctx, store, *imageDir)
	if err != nil {
		log.Fatalf("❌ Image upload failed: %v", err)
	}
	log.Printf("✅ Uploaded %d images", len(imageMap))

	articles, err := loadManifest(*manifestPath)
	if err != nil {
		log.Fatalf("❌ Failed to read manifest: %v", err)
	}

	created, skipped := 0, 0
	for _, a := range articles {
		req := &content.CreateContentRequest{
			Title:       a.Title,
			Content:     rewriteImageRefs(a.Content, imageMap),
			Category:    a.Category,
			Order:       a.Order,
			IsPublished: a.IsPublished,
		}

		if _, err := svc.Create(ctx, req); err != nil {
			if errors.Is(err, content.ErrDuplicateSlug) {
				log.Printf("• Skipped (exists): %s", a.Title)
				skipped++
				continue
			}
			log.Fatalf("❌ Failed to create %q: %v", a.Title, err)
		}
		log.Printf("✓ Created: %s", a.Title)
		created++
	}

	log.Printf("✅ Done: %d created, %d skipped", created, skipped)
}

// uploadImages pushes every png/jpg in dir to object storage and
// returns filename -> public URL.
func uploadImages(ctx context.Context, store *storage.MinIOStorage, dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("⚠️  Image directory %s not found, skipping image upload", dir)
			return map[string]string{}, nil
		}
		return nil, err
	}

	imageMap := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		var contentType string
		switch ext {
		case ".png":
			contentType = "image/png"
		case ".jpg", ".jpeg":
			contentType = "image/jpeg"
		default:
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		url, err := store.Upload(ctx, "manual/"+name, data, contentType)
		if err != nil {
			return nil, fmt.Errorf("failed to upload %s: %w", name, err)
		}

		log.Printf("✓ Uploaded: %s", name)
		imageMap[name] = url
	}

	return imageMap, nil
}

func loadManifest(path string) ([]seedArticle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var articles []seedArticle
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return articles, nil
}

// rewriteImageRefs replaces local /images/manual/<file> references with
// the uploaded URLs. Unknown files keep their local path.
func rewriteImageRefs(body string, imageMap map[string]string) string {
	for name, url := range imageMap {
		body = strings.ReplaceAll(body, "/images/manual/"+name, url)
	}
	return body
}

// noopCache satisfies pkg/cache.Cache without a Redis connection.
type noopCache struct{}

func (noopCache) Get(context.Context, string, interface{}) (bool, error)       { return false, nil }
func (noopCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (noopCache) Delete(context.Context, ...string) error                      { return nil }
func (noopCache) DeletePattern(context.Context, string) error                  { return nil }
func (noopCache) Ping(context.Context) error                                   { return nil }
