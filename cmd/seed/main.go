package main

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"roomcare/internal/config"
	"roomcare/internal/db"
	"roomcare/internal/model"
	"roomcare/internal/repository"
)

const (
	adminUsername = "admin"
	adminPassword = "admin1234"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Room{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	roomRepo := repository.NewRoomRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	created, skipped, err := seedRooms(ctx, roomRepo)
	if err != nil {
		log.Fatalf("Failed to seed rooms: %v", err)
	}
	log.Printf("Rooms seeded: %d created, %d already present", created, skipped)

	if err := seedAdmin(ctx, userRepo); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	log.Println("Seed completed successfully!")
}

// floorFacilities returns the standard facility list for a floor.
// Lower floors have fans, the third floor has air conditioning, and
// floors above the first add a fridge.
func floorFacilities(floor int) []string {
	facilities := []string{"fan", "wardrobe", "bed", "dressing table"}
	if floor >= 3 {
		facilities[0] = "air conditioner"
	}
	if floor >= 2 {
		facilities = append(facilities, "fridge")
	}
	facilities = append(facilities, "sink", "mirror", "shower", "toilet", "bidet sprayer")
	return facilities
}

// seedRooms creates ten rooms per floor for floors 1-3, skipping any
// room number that already exists.
func seedRooms(ctx context.Context, repo repository.RoomRepository) (created, skipped int, err error) {
	for floor := 1; floor <= 3; floor++ {
		for i := 1; i <= 10; i++ {
			roomNumber := fmt.Sprintf("%d%02d", floor, i)

			existing, err := repo.FindByNumber(ctx, roomNumber)
			if err != nil && err != gorm.ErrRecordNotFound {
				return created, skipped, fmt.Errorf("check room %s: %w", roomNumber, err)
			}
			if existing != nil {
				skipped++
				continue
			}

			room := &model.Room{
				RoomNumber: roomNumber,
				Floor:      floor,
				Facilities: floorFacilities(floor),
			}
			if err := repo.Create(ctx, room); err != nil {
				return created, skipped, fmt.Errorf("create room %s: %w", roomNumber, err)
			}
			created++
		}
	}
	return created, skipped, nil
}

// seedAdmin creates the staff admin account if it does not exist.
func seedAdmin(ctx context.Context, repo repository.UserRepository) error {
	existing, err := repo.FindByUsername(ctx, adminUsername)
	if err != nil && err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check admin account: %w", err)
	}
	if existing != nil {
		log.Println("Admin account already present")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &model.User{
		Username:     adminUsername,
		PasswordHash: string(hash),
		Name:         "Administrator",
		Role:         model.RoleAdmin,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}
	log.Println("Admin account created")
	return nil
}
