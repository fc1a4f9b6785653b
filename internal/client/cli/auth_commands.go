package cli

import (
	"context"
	"fmt"

	"github.com/sportlane/shopclient/internal/client/auth"
)

func (c *Cli) runLogin(ctx context.Context) error {
	fmt.Println("=== Sign In ===")
	fmt.Println()

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Println()
	fmt.Println("Authenticating...")

	user, err := c.auth.SignIn(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✓ Signed in!")
	fmt.Printf("Welcome, %s %s\n", user.FirstName, user.LastName)
	return nil
}

func (c *Cli) runSignUp(ctx context.Context) error {
	fmt.Println("=== Sign Up ===")
	fmt.Println()

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	firstName, err := readInput("First name: ")
	if err != nil {
		return fmt.Errorf("failed to read first name: %w", err)
	}
	lastName, err := readInput("Last name: ")
	if err != nil {
		return fmt.Errorf("failed to read last name: %w", err)
	}
	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Println()
	fmt.Println("Registering...")

	if err := c.auth.SignUp(ctx, auth.SignUpParams{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	}); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✓ Account created, you are signed in.")
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.auth.SignOut(ctx); err != nil {
		return err
	}
	fmt.Println("✓ Signed out.")
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	ok, err := c.creds.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check status: %w", err)
	}

	if !ok {
		fmt.Println("Not signed in. Run 'shopclient login' first.")
		return nil
	}

	snap := c.state.Snapshot()
	fmt.Println("Signed in.")
	if snap.User != nil {
		fmt.Printf("User:  %s %s <%s>\n", snap.User.FirstName, snap.User.LastName, snap.User.Email)
	}
	return nil
}

func (c *Cli) runProfile(ctx context.Context) error {
	me, err := c.auth.Profile(ctx)
	if err != nil {
		return err
	}

	fmt.Println("=== Profile ===")
	fmt.Printf("ID:    %s\n", me.ID)
	fmt.Printf("Name:  %s\n", me.Name)
	fmt.Printf("Email: %s\n", me.Email)
	return nil
}
