package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sumaiya48/summer-camp-server/internal/config"
	"github.com/sumaiya48/summer-camp-server/internal/database"
	"github.com/sumaiya48/summer-camp-server/internal/logger"
	"github.com/sumaiya48/summer-camp-server/internal/model"
	"github.com/sumaiya48/summer-camp-server/internal/repository"
)

// Seeds instructor profiles and approved classes for local development.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := database.NewMongoClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(cfg.MongoDatabase)
	instructorRepo := repository.NewInstructorRepository(db)
	classRepo := repository.NewClassRepository(db)

	fmt.Println("=== Seeding demo instructors and classes ===")

	instructors := []model.Instructor{
		{Name: "Maria Fernandez", Email: "maria@summercamp.example", Image: "https://i.ibb.co/maria.jpg", NumberOfClasses: 2},
		{Name: "James Okafor", Email: "james@summercamp.example", Image: "https://i.ibb.co/james.jpg", NumberOfClasses: 1},
		{Name: "Lena Schmidt", Email: "lena@summercamp.example", Image: "https://i.ibb.co/lena.jpg", NumberOfClasses: 1},
	}

	for _, instructor := range instructors {
		if _, err := instructorRepo.Insert(ctx, &instructor); err != nil {
			log.Fatal().Err(err).Str("email", instructor.Email).Msg("Failed to seed instructor")
		}
		fmt.Printf("Seeded instructor %s\n", instructor.Name)
	}

	classes := []model.Class{
		{ClassName: "Watercolor Basics", InstructorName: "Maria Fernandez", Email: "maria@summercamp.example", Price: 49.99, AvailableSeats: 20, Status: model.ClassStatusApproved},
		{ClassName: "Pottery Wheel", InstructorName: "Maria Fernandez", Email: "maria@summercamp.example", Price: 79.5, AvailableSeats: 8, Status: model.ClassStatusApproved},
		{ClassName: "Junior Robotics", InstructorName: "James Okafor", Email: "james@summercamp.example", Price: 120, AvailableSeats: 12, Status: model.ClassStatusApproved},
		{ClassName: "Trail Photography", InstructorName: "Lena Schmidt", Email: "lena@summercamp.example", Price: 65, AvailableSeats: 15, Status: model.ClassStatusPending},
	}

	for _, class := range classes {
		if _, err := classRepo.Insert(ctx, &class); err != nil {
			log.Fatal().Err(err).Str("class", class.ClassName).Msg("Failed to seed class")
		}
		fmt.Printf("Seeded class %s (%s)\n", class.ClassName, class.Status)
	}

	fmt.Println("Done.")
}
