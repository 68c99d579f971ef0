package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/akorlov/mapmark/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a name, email and password and attempts to
// create a new account. On success the issued session is adopted, so the
// user is signed in right away.
//
// The password byte slice is securely wiped before returning. Any I/O or
// service error is returned unchanged.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.sessionService.Register(ctx, name, email, password); err != nil {
		log.Printf("Registration unsuccessfull: %s", err.Error())
		return err
	}

	a.startRenewalWatcher(ctx)
	fmt.Println("Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate. On
// success the session is persisted locally and the background renewal
// watcher is started.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.sessionService.Login(ctx, email, password); err != nil {
		log.Printf("Login unsuccessfull: %s", err.Error())
		return err
	}

	log.Printf("Login successfull")
	a.startRenewalWatcher(ctx)
	return nil
}

// Logout stops the renewal watcher, revokes the refresh token on the server
// (best effort) and clears the locally persisted session.
func (a *App) Logout(ctx context.Context) error {
	a.stopRenewalWatcher()

	if err := a.sessionService.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}
