package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"protrack/internal/auth"
	"protrack/internal/config"
	"protrack/internal/db"
	"protrack/internal/model"
	"protrack/internal/repository"
)

const (
	seedPassword     = "password123"
	demoProjectCount = 25
)

var teamMembers = []string{
	"Alice Johnson",
	"Bob Smith",
	"Charlie Brown",
	"Diana Ross",
	"Edward Chen",
	"Fiona Williams",
	"George Miller",
	"Hannah Davis",
}

var projectNames = []string{
	"Website Redesign",
	"Mobile App Development",
	"Cloud Migration",
	"Data Analytics Platform",
	"Customer Portal",
	"API Integration",
	"Security Audit",
	"E-commerce Platform",
	"CRM Implementation",
	"Marketing Automation",
	"DevOps Pipeline",
	"Machine Learning Model",
}

var statuses = []model.Status{model.StatusActive, model.StatusOnHold, model.StatusCompleted}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Project{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	// Wipe existing data so the seed is repeatable.
	if err := gormDB.Exec("DELETE FROM projects").Error; err != nil {
		log.Fatalf("Failed to clear projects: %v", err)
	}
	if err := gormDB.Exec("DELETE FROM users").Error; err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	ctx := context.Background()

	hashed, err := auth.HashPassword(seedPassword)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	demoUser := &model.User{
		Email:        "demo@example.com",
		Name:         "Demo User",
		PasswordHash: hashed,
		Role:         model.RoleUser,
	}
	if err := userRepo.Create(ctx, demoUser); err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Printf("Created demo user: %s", demoUser.Email)

	adminUser := &model.User{
		Email:        "admin@example.com",
		Name:         "Admin User",
		PasswordHash: hashed,
		Role:         model.RoleAdmin,
	}
	if err := userRepo.Create(ctx, adminUser); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Printf("Created admin user: %s", adminUser.Email)

	created := 0
	for i := 0; i < demoProjectCount; i++ {
		project := &model.Project{
			Name:        randomItem(projectNames),
			Description: "Seeded sample project",
			Status:      randomItem(statuses),
			Deadline:    randomDate(time.Now(), time.Now().AddDate(1, 0, 0)),
			TeamMember:  randomItem(teamMembers),
			Budget:      randomBudget(),
			UserID:      demoUser.ID,
		}
		if err := projectRepo.Create(ctx, project); err != nil {
			log.Fatalf("Failed to create project %q: %v", project.Name, err)
		}
		created++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users created: 2 (password %q)", seedPassword)
	log.Printf("  - Projects created: %d", created)
}

func randomItem[T any](items []T) T {
	return items[rand.Intn(len(items))]
}

// randomDate picks a date within [start, end).
func randomDate(start, end time.Time) time.Time {
	delta := end.Unix() - start.Unix()
	return time.Unix(start.Unix()+rand.Int63n(delta), 0)
}

// randomBudget returns $5,000 - $100,000 in $100 increments.
func randomBudget() decimal.Decimal {
	return decimal.NewFromInt(int64(rand.Intn(951)+50) * 100)
}
