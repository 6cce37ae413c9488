// Seeder loads a sample set of users and posts into the document store so
// the query endpoints have data to rank against during development.
package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/studymate-labs/matchengine/internal/config"
	dbRedis "github.com/studymate-labs/matchengine/internal/db/redis"
	"github.com/studymate-labs/matchengine/internal/domain"
	logpkg "github.com/studymate-labs/matchengine/internal/logger"
	postrepo "github.com/studymate-labs/matchengine/internal/repository/post"
	userrepo "github.com/studymate-labs/matchengine/internal/repository/user"
)

func main() {
	env := config.GetEnv()
	cfg := config.MustLoad(env)

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}

	markerKey := cfg.Storage.KeyPrefix + "seed:meta"
	force := os.Getenv("SEED_FORCE") == "1"

	seeded, err := store.Exists(ctx, markerKey)
	if err != nil {
		logger.Fatal("Failed to check seed marker", zap.Error(err))
	}
	if seeded && !force {
		logger.Info("Store already seeded, skipping (set SEED_FORCE=1 to reseed)")
		return
	}

	// Reseeding: drop stale documents so removed samples do not linger.
	for _, pattern := range []string{"user:*", "post:*"} {
		keys, err := store.Scan(ctx, cfg.Storage.KeyPrefix+pattern)
		if err != nil {
			logger.Fatal("Failed to scan stale keys", zap.String("pattern", pattern), zap.Error(err))
		}
		for _, key := range keys {
			if err := store.Del(ctx, key); err != nil {
				logger.Fatal("Failed to delete stale key", zap.String("key", key), zap.Error(err))
			}
		}
		if len(keys) > 0 {
			logger.Info("Cleared stale keys", zap.String("pattern", pattern), zap.Int("count", len(keys)))
		}
	}

	users := userrepo.New(store, cfg.Storage.KeyPrefix)
	posts := postrepo.New(store, cfg.Storage.KeyPrefix)

	seedUsers := sampleUsers()
	for _, u := range seedUsers {
		if err := users.Put(ctx, u); err != nil {
			logger.Fatal("Failed to seed user", zap.String("name", u.Name), zap.Error(err))
		}
	}
	logger.Info("Seeded users", zap.Int("count", len(seedUsers)))

	seedPosts := samplePosts(seedUsers)
	for _, p := range seedPosts {
		if err := posts.Put(ctx, p); err != nil {
			logger.Fatal("Failed to seed post", zap.String("title", p.Title), zap.Error(err))
		}
	}
	logger.Info("Seeded posts", zap.Int("count", len(seedPosts)))

	marker, err := json.Marshal(map[string]string{
		"seeded_at": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		logger.Fatal("Failed to encode seed marker", zap.Error(err))
	}
	if err := store.JSONSet(ctx, markerKey, "$", marker); err != nil {
		logger.Fatal("Failed to write seed marker", zap.Error(err))
	}
}

func sampleUsers() []domain.User {
	return []domain.User{
		{
			ID:        domain.NewID(),
			Name:      "Aisha Rahman",
			Username:  "aisha_dev",
			AvatarID:  "3",
			Bio:       "Frontend tinkerer, learning TypeScript properly this time.",
			Domains:   []string{"web", "react"},
			StudyTime: "night",
			TeamPref:  "team",
		},
		{
			ID:        domain.NewID(),
			Name:      "Tomás Silva",
			Username:  "tsilva",
			AvatarID:  "7",
			Bio:       "Kaggle weekends. PyTorch over TensorFlow, fight me.",
			Domains:   []string{"ai", "data science"},
			StudyTime: "morning",
			TeamPref:  "solo",
		},
		{
			ID:        domain.NewID(),
			Name:      "Mira Chen",
			Username:  "mirachen",
			AvatarID:  "1",
			Domains:   []string{"cybersecurity", "linux"},
			StudyTime: "flexible",
			TeamPref:  "team",
		},
		{
			ID:        domain.NewID(),
			Name:      "Dev Patel",
			Username:  "devp",
			AvatarID:  "5",
			Bio:       "Grinding leetcode for the fall interview season.",
			Domains:   []string{"dsa"},
			StudyTime: "evening",
			TeamPref:  "solo",
		},
	}
}

func samplePosts(users []domain.User) []domain.Post {
	now := time.Now().UTC()
	author := func(i int) string { return users[i%len(users)].ID }

	return []domain.Post{
		{
			ID:        domain.NewID(),
			AuthorID:  author(0),
			Title:     "React server components study group",
			Summary:   "Weekly walkthrough of the RSC docs and demos.",
			Tags:      []string{"react", "nextjs", "frontend"},
			Likes:     []string{author(1), author(2)},
			CreatedAt: now.Add(-36 * time.Hour),
		},
		{
			ID:        domain.NewID(),
			AuthorID:  author(1),
			Title:     "Transformer from scratch, anyone?",
			Summary:   "Implementing attention in numpy before touching a framework.",
			Tags:      []string{"transformer", "numpy", "deep learning"},
			Likes:     []string{author(0)},
			CreatedAt: now.Add(-5 * 24 * time.Hour),
		},
		{
			ID:        domain.NewID(),
			AuthorID:  author(2),
			Title:     "OverTheWire bandit walkthrough notes",
			Tags:      []string{"hacking", "linux", "ctf"},
			Likes:     []string{},
			CreatedAt: now.Add(-12 * time.Hour),
		},
		{
			ID:        domain.NewID(),
			AuthorID:  author(3),
			Title:     "Untitled draft",
			Tags:      []string{},
			Likes:     []string{},
			CreatedAt: now.Add(-2 * 24 * time.Hour),
		},
	}
}
