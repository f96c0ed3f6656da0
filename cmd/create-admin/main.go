package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sumaiya48/summer-camp-server/internal/config"
	"github.com/sumaiya48/summer-camp-server/internal/database"
	"github.com/sumaiya48/summer-camp-server/internal/logger"
	"github.com/sumaiya48/summer-camp-server/internal/model"
	"github.com/sumaiya48/summer-camp-server/internal/repository"
)

// Promotes a user to admin by email. The role-update endpoint is admin-gated,
// so the first admin has to be minted out of band.
func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to MongoDB ────────────────────────────────────────────
	client, err := database.NewMongoClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	userRepo := repository.NewUserRepository(client.Database(cfg.MongoDatabase))

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Promote User to Admin ===")

	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	user, err := userRepo.FindByEmail(ctx, email)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to look up user")
	}

	if user == nil {
		fmt.Print("User not found. Enter Name to create one: ")
		name, _ := reader.ReadString('\n')
		name = strings.TrimSpace(name)
		if name == "" {
			fmt.Println("Error: Name is required")
			return
		}

		ack, err := userRepo.Insert(ctx, &model.User{
			Name:  name,
			Email: email,
			Role:  model.RoleAdmin,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create admin user")
		}
		fmt.Printf("\nSuccess! Admin '%s' (%s) created with ID: %v\n", name, email, ack.InsertedID)
		return
	}

	if user.Role == model.RoleAdmin {
		fmt.Printf("User '%s' is already an admin\n", email)
		return
	}

	if _, err := userRepo.UpdateRole(ctx, user.ID.Hex(), model.RoleAdmin); err != nil {
		log.Fatal().Err(err).Msg("Failed to update role")
	}

	fmt.Printf("\nSuccess! '%s' promoted from %s to admin\n", email, user.EffectiveRole())
}
