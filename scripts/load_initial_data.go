package main

import (
	"fmt"
	"log"
	"os"

	"org-management-backend/internal/config"
	"org-management-backend/internal/database"
	"org-management-backend/internal/repository"
	"org-management-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "org-management-backend/internal/errors"
)

// OrganizationSeed matches one entry in data/initial_data.yaml
type OrganizationSeed struct {
	OrganizationName string `yaml:"organization_name"`
	AdminEmail       string `yaml:"admin_email"`
	AdminPassword    string `yaml:"admin_password"`
}

type SeedFile struct {
	Organizations []OrganizationSeed `yaml:"organizations"`
}

// Seeds organizations through the service layer so every record gets the same
// validation, hashing and partition provisioning as an API request.
func main() {
	path := "data/initial_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}

	var seeds SeedFile
	if err := yaml.Unmarshal(raw, &seeds); err != nil {
		log.Fatalf("Failed to parse %s: %v", path, err)
	}

	orgService := service.NewOrganizationService(
		repository.NewOrganizationRepository(db),
		repository.NewAdminRepository(db),
		repository.NewPartitionRepository(db),
		validator.New(),
	)

	created, skipped := 0, 0
	for _, seed := range seeds.Organizations {
		_, err := orgService.Create(&service.CreateOrganizationRequest{
			OrganizationName: seed.OrganizationName,
			Email:            seed.AdminEmail,
			Password:         seed.AdminPassword,
		})
		switch {
		case err == nil:
			created++
			fmt.Printf("created organization %q\n", seed.OrganizationName)
		case apperrors.IsAlreadyExists(err):
			skipped++
			fmt.Printf("skipping %q: already exists\n", seed.OrganizationName)
		default:
			log.Fatalf("Failed to create organization %q: %v", seed.OrganizationName, err)
		}
	}

	fmt.Printf("done: %d created, %d skipped\n", created, skipped)
}
