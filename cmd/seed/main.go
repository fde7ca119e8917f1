// seed creates the schema and loads the sample catalog (companies, jobs, courses) into Postgres.
// Existing rows are left untouched, so it is safe to run repeatedly.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ErlanBelekov/job-portal/internal/infrastructure/postgres"
	"github.com/ErlanBelekov/job-portal/internal/password"
	"github.com/ErlanBelekov/job-portal/internal/seed"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		log.Fatalf("migrate: %v", err)
	}

	data := seed.Sample(time.Now())
	// The hasher is unused by seeding; the catalog holds no users.
	store := postgres.NewStorage(pool, password.NewHasher(password.DefaultCost), 0)

	inserted, err := store.SeedSampleData(ctx, data)
	if err != nil {
		pool.Close()
		log.Fatalf("seed: %v", err)
	}

	total := len(data.Companies) + len(data.Jobs) + len(data.Courses)

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  Companies: %d\n", len(data.Companies))
	fmt.Printf("  Jobs:      %d\n", len(data.Jobs))
	fmt.Printf("  Courses:   %d\n", len(data.Courses))
	fmt.Printf("  Inserted:  %d  (skipped %d already existing)\n", inserted, total-inserted)
	fmt.Println()
	fmt.Println("Try:")
	fmt.Println()
	fmt.Println("  curl -s 'http://localhost:5000/api/jobs?experienceLevel=fresher&search=java'")
	fmt.Println("  curl -s 'http://localhost:5000/api/courses?category=programming'")
}
