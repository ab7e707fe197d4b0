package cli

import (
	"context"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Register prompts the user for a username, email and password and attempts
// to create a new account.
//
// On success it prints "Success!" and returns nil. Any I/O or gateway error
// is logged and returned unchanged.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
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

	if err := a.gw.Register(ctx, userName, email, password); err != nil {
		a.log.Error(ctx, "registration failed", "err", err)
		return err
	}

	printlnFn("Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
//
// On success the token is installed into the session, the default "Saved"
// folder is ensured, and the history cache is refreshed from the server.
// Refresh failures only log: the cached history stays usable offline.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username or email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	token, err := a.gw.Login(ctx, userName, password)
	if err != nil {
		a.log.Error(ctx, "login failed", "err", err)
		return err
	}

	a.sess.SetToken(token)
	a.userName = userName

	if _, err := a.folders.InitializeDefault(ctx); err != nil {
		a.log.Warn(ctx, "could not initialize default folder", "err", err)
	}
	if err := a.history.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "could not refresh history", "err", err)
	}

	printlnFn("Logged in")
	return nil
}

// Logout drains pending background syncs and drops the session token.
// The local cache is kept so the next login starts warm.
func (a *App) Logout(ctx context.Context) error {
	a.history.Wait()
	a.folders.Wait()
	a.saved.Wait()

	a.sess.ClearToken()
	a.userName = ""
	printlnFn("Logged out")
	return nil
}
