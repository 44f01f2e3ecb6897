// Admin CLI for operational tasks: creating users and sending
// notifications without going through the HTTP API.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/finexa/backend/infra/initializer"
	"github.com/finexa/backend/pkg/app"
	"github.com/finexa/backend/pkg/config"
	"github.com/google/uuid"
	"golang.org/x/term"
)

func main() {
	argsLen := len(os.Args)
	if argsLen < 2 {
		usage()
		return
	}
	cmd := os.Args[1]

	cfg, err := config.Load(".env")
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		color.Red("Failed to initialize dependencies: %v", err)
		os.Exit(1)
	}
	application := app.New(deps, cfg)
	ctx := context.Background()

	switch cmd {
	case "create-user":
		if argsLen < 5 {
			fmt.Println("Usage: cli create-user <full_name> <age> <email>")
			return
		}
		age, err := strconv.Atoi(os.Args[3])
		if err != nil {
			color.Red("Invalid age: %v", err)
			return
		}
		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			color.Red("Failed to read password: %v", err)
			return
		}
		u, err := application.UserService.Register(
			ctx, os.Args[2], age, os.Args[4], string(password), nil)
		if err != nil {
			color.Red("Error creating user: %v", err)
			return
		}
		color.Green("User created: ID=%s Email=%s", u.ID, u.Email)
	case "notify":
		if argsLen < 5 {
			fmt.Println("Usage: cli notify <user_id> <title> <message> [type]")
			return
		}
		userID, err := uuid.Parse(os.Args[2])
		if err != nil {
			color.Red("Invalid user ID: %v", err)
			return
		}
		notifType := ""
		if argsLen > 5 {
			notifType = os.Args[5]
		}
		n, err := application.NotificationService.CreateNotification(
			ctx, userID, os.Args[3], os.Args[4], notifType)
		if err != nil {
			color.Red("Error sending notification: %v", err)
			return
		}
		color.Green("Notification sent: ID=%s Type=%s", n.ID, n.Type)
	case "list-users":
		users, err := application.UserService.List(ctx)
		if err != nil {
			color.Red("Error listing users: %v", err)
			return
		}
		for _, u := range users {
			fmt.Printf("%s  %-30s %s\n", u.ID, u.Email, u.FullName)
		}
		color.Cyan("%d user(s)", len(users))
	default:
		color.Yellow("Unknown command: %s", cmd)
		usage()
	}
}

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  create-user <full_name> <age> <email>")
	fmt.Println("  notify <user_id> <title> <message> [type]")
	fmt.Println("  list-users")
}
