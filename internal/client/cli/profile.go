package cli

import (
	"context"
	"fmt"
	"os"
)

// Whoami prints the signed-in identity.
func (a *App) Whoami(ctx context.Context) error {
	user := a.sessionService.CurrentUser()
	if user == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	if user.ProfilePicture != "" {
		fmt.Printf("Profile picture: %s\n", user.ProfilePicture)
	}
	return nil
}

// UpdateProfile prompts for a new name and profile picture and sends the
// change to the server.
func (a *App) UpdateProfile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter new name", os.Stdout)
	if err != nil {
		return err
	}

	picture, err := getSimpleText(a.reader, "Enter profile picture URL (empty to clear)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.sessionService.UpdateProfile(ctx, name, picture); err != nil {
		return err
	}

	fmt.Println("Profile updated")
	return nil
}
