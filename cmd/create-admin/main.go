// Command create-admin generates an admin account with random credentials
// and prints them once.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"campusjobs-backend/internal/apperror"
	"campusjobs-backend/internal/config"
	"campusjobs-backend/internal/database"
	"campusjobs-backend/internal/utilities"
)

// generateRandomString creates a random hex string of length 2n
func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal(err)
	}
	return hex.EncodeToString(bytes)
}

// generateUniqueUsername tries until a unique username is found
func generateUniqueUsername(ctx context.Context, db *database.DBinstanceStruct) (string, error) {
	for {
		username := "admin_" + generateRandomString(4)
		_, err := db.FindUserByUsername(ctx, username)
		if apperror.KindOf(err) == apperror.KindNotFound {
			return username, nil
		}
		if err != nil {
			return "", err
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewDBInstance(cfg.DB, zap.NewNop())
	if err != nil {
		log.Fatalf("database failed to initialize: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	username, err := generateUniqueUsername(ctx, db)
	if err != nil {
		log.Fatalf("failed to look up usernames: %v", err)
	}
	password := generateRandomString(8)

	admin, err := utilities.CreateAdmin(ctx, db, username, password)
	if err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	// Print credentials (only show plain password here!)
	fmt.Println("Admin credentials generated successfully!")
	fmt.Println("======================================")
	fmt.Printf("Username: %s\n", admin.Username)
	fmt.Printf("Password: %s\n", password)
	fmt.Println("======================================")

	os.Exit(0)
}
