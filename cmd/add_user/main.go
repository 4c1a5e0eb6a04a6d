package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/MasterWithAhmad/Student-Grading-System/app/config"
	"github.com/MasterWithAhmad/Student-Grading-System/app/database"
	"github.com/MasterWithAhmad/Student-Grading-System/app/models"
	"github.com/MasterWithAhmad/Student-Grading-System/app/routes/auth"
)

// Creates an account directly in the database, for first-run
// provisioning before anyone can log in.
func main() {
	username := flag.String("username", "", "username for the new account")
	password := flag.String("password", "", "password for the new account")
	role := flag.String("role", string(models.RoleTeacher), "account role (admin or teacher)")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("both -username and -password are required")
	}

	config.Load()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.InitializeSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	hashedPassword, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Username: *username,
		Password: hashedPassword,
		Role:     models.UserRole(*role),
	}
	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Failed to create user:", err)
	}

	fmt.Printf("User created successfully: %s (%s)\n", user.Username, user.Role)
}
