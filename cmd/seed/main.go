package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"inkwell/internal/adapters/postgres"
	"inkwell/internal/config"
	"inkwell/internal/core/auth"
	"inkwell/internal/domain"
	"inkwell/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	defaultDSN := os.Getenv("DATABASE_URL")
	dsn := flag.String("dsn", defaultDSN, "database url")
	posts := flag.Int("posts", 3, "number of demo posts")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("DSN required via flag -dsn or DATABASE_URL env")
	}

	ctx := context.Background()

	pool, err := postgres.InitDB(ctx, *dsn, logger.Nop())
	if err != nil {
		log.Fatal("Cannot open DB:", err)
	}
	defer pool.Close()

	email := "author@inkwell.local"
	password := "password"

	if envEmail := os.Getenv("SEED_EMAIL"); envEmail != "" {
		email = envEmail
	}

	if envPass := os.Getenv("SEED_PASSWORD"); envPass != "" {
		password = envPass
	}

	users := postgres.NewUserRepository(pool)
	author, err := seedAuthor(ctx, users, email, password)
	if err != nil {
		log.Fatalf("Failed to seed author: %v", err)
	}

	postRepo := postgres.NewPostRepository(pool)
	for i := 1; i <= *posts; i++ {
		p := &domain.Post{
			Title:    fmt.Sprintf("Hello world #%d", i),
			Content:  "Seeded post content.",
			AuthorID: author.ID,
		}
		if err := postRepo.Create(ctx, p); err != nil {
			log.Fatalf("Failed to seed post: %v", err)
		}
	}

	fmt.Printf("✅ Seeded!\n   User: %s\n   Posts: %d\n", email, *posts)
}

func seedAuthor(ctx context.Context, users domain.UserRepository, email, password string) (*domain.User, error) {
	existing, err := users.GetByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	scheme := auth.NewPasswordScheme(config.Load().PasswordScheme)
	hashed, err := scheme.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{Email: email, Password: hashed}
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
