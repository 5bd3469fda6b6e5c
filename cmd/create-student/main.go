package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/dangal-ics/planner-backend/internal/config"
	"github.com/dangal-ics/planner-backend/internal/database"
	"github.com/dangal-ics/planner-backend/internal/logger"
	"github.com/dangal-ics/planner-backend/internal/model"
	"github.com/dangal-ics/planner-backend/internal/repository"
	"github.com/dangal-ics/planner-backend/internal/service"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// Redis is unused here; the auth service only needs it for live sessions.
	studentRepo := repository.NewStudentRepository(pool)
	authService := service.NewAuthService(cfg, nil)
	studentService := service.NewStudentService(studentRepo, authService)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Student Account ===")

	fmt.Print("Enter First Name: ")
	firstName, _ := reader.ReadString('\n')
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		fmt.Println("Error: First name is required")
		return
	}

	fmt.Print("Enter Middle Name (optional): ")
	middleName, _ := reader.ReadString('\n')
	middleName = strings.TrimSpace(middleName)

	fmt.Print("Enter Last Name: ")
	lastName, _ := reader.ReadString('\n')
	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		fmt.Println("Error: Last name is required")
		return
	}

	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	fmt.Println("Programs:")
	for i, p := range service.Programs {
		fmt.Printf("  %d. %s\n", i+1, p)
	}
	fmt.Print("Enter Program (full name, default BS Computer Science): ")
	program, _ := reader.ReadString('\n')
	program = strings.TrimSpace(program)
	if program == "" {
		program = service.Programs[0]
	}
	if !slices.Contains(service.Programs, program) {
		fmt.Println("Error: Unknown program")
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	student, err := studentService.Register(ctx, &model.RegisterRequest{
		FirstName:  firstName,
		MiddleName: middleName,
		LastName:   lastName,
		Email:      email,
		Password:   password,
		Program:    program,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create student")
	}

	fmt.Printf("\nSuccess! Student '%s' (%s) created with ID: %d\n", student.FullName(), student.Email, student.ID)
}
