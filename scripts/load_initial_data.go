package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"todo-list-backend/internal/config"
	"todo-list-backend/internal/database"
	apperrors "todo-list-backend/internal/errors"
	"todo-list-backend/internal/repository"
	"todo-list-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type OrganizationData struct {
	Name string `yaml:"name"`
}

type UserData struct {
	Email        string `yaml:"email"`
	Organization string `yaml:"organization"`
	Password     string `yaml:"password"`
	Superuser    bool   `yaml:"superuser,omitempty"`
}

type ToDoListData struct {
	Organization string `yaml:"organization"`
	Text         string `yaml:"text"`
	IsFinished   bool   `yaml:"is_finished"`
}

// DataFile is the layout of every YAML file under the data directory. A file
// may carry any subset of the sections.
type DataFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
	Users         []UserData         `yaml:"users"`
	ToDoLists     []ToDoListData     `yaml:"todo_lists"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	if err := loadDataFromYAMLFiles(db, cfg, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, cfg *config.Config, dataDir string) error {
	data, err := readDataFiles(dataDir)
	if err != nil {
		return err
	}

	validate := validator.New()
	orgRepo := repository.NewOrganizationRepository(db)
	orgs := service.NewOrganizationService(orgRepo, validate)
	users := service.NewUserService(repository.NewUserRepository(db), orgRepo, validate, cfg.BcryptCost)
	todos := service.NewToDoListService(repository.NewToDoListRepository(db), validate)

	orgMap := make(map[string]uuid.UUID)
	orgCreated := 0
	for _, orgData := range data.Organizations {
		org, created, err := createOrganization(orgs, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		orgMap[org.Name] = org.ID
		if created {
			orgCreated++
		}
	}
	log.Printf("📋 Organizations: %d created, %d total", orgCreated, len(data.Organizations))

	userCreated := 0
	for _, userData := range data.Users {
		created, err := createUser(users, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(data.Users))

	todoCreated := 0
	for _, todoData := range data.ToDoLists {
		orgID, ok := orgMap[todoData.Organization]
		if !ok {
			log.Printf("⚠️  Warning: organization %s not found for todo list entry %q", todoData.Organization, todoData.Text)
			continue
		}
		created, err := createToDoList(todos, orgID, todoData)
		if err != nil {
			return fmt.Errorf("failed to create todo list entry %q: %w", todoData.Text, err)
		}
		if created {
			todoCreated++
		}
	}
	log.Printf("📋 Todo lists: %d created, %d total", todoCreated, len(data.ToDoLists))

	return nil
}

func readDataFiles(dataDir string) (*DataFile, error) {
	var all DataFile

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var file DataFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		all.Organizations = append(all.Organizations, file.Organizations...)
		all.Users = append(all.Users, file.Users...)
		all.ToDoLists = append(all.ToDoLists, file.ToDoLists...)
		return nil
	})

	return &all, err
}

// createOrganization goes through the service so seeded names obey the
// same validation as the API. An existing name is reused.
func createOrganization(orgs *service.OrganizationService, orgData OrganizationData) (*service.OrganizationResponse, bool, error) {
	org, err := orgs.Create(&service.CreateOrganizationRequest{Name: orgData.Name})
	if err == nil {
		return org, true, nil
	}
	if !errors.Is(err, apperrors.ErrOrganizationExists) {
		return nil, false, err
	}

	org, err = orgs.GetByName(orgData.Name)
	if err != nil {
		return nil, false, err
	}
	return org, false, nil
}

func createUser(users *service.UserService, userData UserData) (bool, error) {
	var err error
	if userData.Superuser {
		_, err = users.CreateSuperuser(userData.Email, userData.Organization, userData.Password)
	} else {
		_, err = users.CreateUser(userData.Email, userData.Organization, userData.Password)
	}

	if errors.Is(err, apperrors.ErrUserExists) {
		return false, nil
	}
	return err == nil, err
}

// createToDoList skips entries whose text already exists in the organization
func createToDoList(todos *service.ToDoListService, orgID uuid.UUID, todoData ToDoListData) (bool, error) {
	existing, err := todos.List(orgID)
	if err != nil {
		return false, err
	}
	for _, item := range existing {
		if item.Text == todoData.Text {
			return false, nil
		}
	}

	_, err = todos.Create(orgID, &service.CreateToDoListRequest{
		Text:       todoData.Text,
		IsFinished: todoData.IsFinished,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
