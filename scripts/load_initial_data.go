package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"saas-dashboard-backend/internal/config"
	"saas-dashboard-backend/internal/database"
	"saas-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Email     string `yaml:"email"`
	Name      string `yaml:"name"`
	AvatarURL string `yaml:"avatar_url,omitempty"`
}

type MembershipData struct {
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type InvitationData struct {
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type OrganizationData struct {
	Name        string           `yaml:"name"`
	OwnerEmail  string           `yaml:"owner_email"`
	Members     []MembershipData `yaml:"members,omitempty"`
	Invitations []InvitationData `yaml:"invitations,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
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

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	// Create users first
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create organizations with their owner membership
	orgCreated := 0
	membershipCreated := 0
	invitationCreated := 0
	for _, orgData := range organizations {
		org, created, err := createOrganization(db, orgData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		if created {
			orgCreated++
			membershipCreated++ // owner membership
		}

		for _, memberData := range orgData.Members {
			created, err := createMembership(db, org, memberData, userMap)
			if err != nil {
				log.Printf("⚠️  Warning: failed to create membership %s in %s: %v", memberData.Email, orgData.Name, err)
				continue
			}
			if created {
				membershipCreated++
			}
		}

		for _, invitationData := range orgData.Invitations {
			created, err := createInvitation(db, org, invitationData)
			if err != nil {
				log.Printf("⚠️  Warning: failed to create invitation %s for %s: %v", invitationData.Email, orgData.Name, err)
				continue
			}
			if created {
				invitationCreated++
			}
		}
	}
	log.Printf("📋 Organizations: %d created, %d total", orgCreated, len(organizations))
	log.Printf("📋 Memberships: %d created", membershipCreated)
	log.Printf("📋 Invitations: %d created", invitationCreated)

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var allOrgs []OrganizationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "organizations") {
			var file OrganizationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allOrgs = append(allOrgs, file.Organizations...)
		}
		return nil
	})

	return allOrgs, err
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			user = models.User{
				Email:     userData.Email,
				Name:      userData.Name,
				AvatarURL: userData.AvatarURL,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil // created = false (existing)
}

func createOrganization(db *gorm.DB, orgData OrganizationData, userMap map[string]*models.User) (*models.Organization, bool, error) {
	owner := userMap[orgData.OwnerEmail]
	if owner == nil {
		return nil, false, fmt.Errorf("owner %s not found for organization %s", orgData.OwnerEmail, orgData.Name)
	}

	var org models.Organization
	if err := db.Where("name = ?", orgData.Name).First(&org).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			org = models.Organization{
				Name: orgData.Name,
			}

			// The organization and its owner membership land together
			err := db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&org).Error; err != nil {
					return err
				}
				membership := models.Membership{
					OrganizationID: org.ID,
					UserID:         owner.ID,
					Role:           models.MembershipRoleOwner,
				}
				return tx.Create(&membership).Error
			})
			if err != nil {
				return nil, false, fmt.Errorf("failed to create organization: %w", err)
			}
			return &org, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query organization: %w", err)
		}
	}

	return &org, false, nil // created = false (existing)
}

func createMembership(db *gorm.DB, org *models.Organization, memberData MembershipData, userMap map[string]*models.User) (bool, error) {
	user := userMap[memberData.Email]
	if user == nil {
		return false, fmt.Errorf("user %s not found", memberData.Email)
	}

	role := models.MembershipRole(memberData.Role)
	if !role.IsValid() {
		return false, fmt.Errorf("invalid role %q", memberData.Role)
	}

	var membership models.Membership
	err := db.Where("organization_id = ? AND user_id = ?", org.ID, user.ID).First(&membership).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			membership = models.Membership{
				OrganizationID: org.ID,
				UserID:         user.ID,
				Role:           role,
			}
			if err := db.Create(&membership).Error; err != nil {
				return false, fmt.Errorf("failed to create membership: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query membership: %w", err)
	}

	return false, nil
}

func createInvitation(db *gorm.DB, org *models.Organization, invitationData InvitationData) (bool, error) {
	role := models.MembershipRole(invitationData.Role)
	if !role.IsValid() {
		return false, fmt.Errorf("invalid role %q", invitationData.Role)
	}

	var invitation models.Invitation
	err := db.Where("organization_id = ? AND email = ? AND status = ?",
		org.ID, invitationData.Email, models.InvitationStatusPending).First(&invitation).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			expiresAt := time.Now().Add(7 * 24 * time.Hour)
			invitation = models.Invitation{
				OrganizationID: org.ID,
				Email:          invitationData.Email,
				Role:           role,
				Token:          uuid.NewString(),
				Status:         models.InvitationStatusPending,
				ExpiresAt:      &expiresAt,
			}
			if err := db.Create(&invitation).Error; err != nil {
				return false, fmt.Errorf("failed to create invitation: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query invitation: %w", err)
	}

	return false, nil
}
