package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tiendartesanal/tienda-cli/internal/models"
)

// AuthCmd groups account and session commands.
type AuthCmd struct {
	Register RegisterCmd `cmd:"" help:"Create a new account"`
	Login    LoginCmd    `cmd:"" help:"Log in and store the session"`
	Logout   LogoutCmd   `cmd:"" help:"Log out and clear the session"`
	Whoami   WhoamiCmd   `cmd:"" help:"Show the current profile"`
}

// establishSession stores the token from an auth response, then resolves the
// full profile with it. The token endpoint does not return the user id and an
// order cannot be submitted without one, so a failed profile fetch rolls the
// session back instead of leaving a half-usable login behind.
func establishSession(ctx context.Context, app *app, resp *models.AuthResponse) error {
	user := models.User{Username: resp.Username, Email: resp.Email}
	if _, err := app.session.Login(user, resp.AccessToken); err != nil {
		return err
	}

	profile, err := app.client.Me(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not fetch profile after login")
		if _, logoutErr := app.session.Logout(); logoutErr != nil {
			log.Warn().Err(logoutErr).Msg("failed to roll back session")
		}
		return fmt.Errorf("login failed, please try again")
	}

	if _, err := app.session.SetUser(*profile); err != nil {
		return err
	}

	return nil
}

type RegisterCmd struct {
	Username string `arg:"" help:"Username for the new account"`
	Email    string `help:"Email address" required:""`
	Password string `help:"Password" required:"" env:"TIENDA_PASSWORD"`
}

func (r *RegisterCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	resp, err := app.client.Register(ctx, models.UserRegister{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	})
	if err != nil {
		log.Error().Err(err).Msg("register failed")
		return fmt.Errorf("could not create the account, please try again")
	}

	fmt.Printf("Account created for %s <%s>\n", resp.Username, resp.Email)

	// Registration returns a token, so start the session right away.
	if err := establishSession(ctx, app, resp); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s\n", resp.Username)
	return nil
}

type LoginCmd struct {
	Username string `arg:"" help:"Username"`
	Password string `help:"Password" required:"" env:"TIENDA_PASSWORD"`
}

func (l *LoginCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	resp, err := app.client.Login(ctx, l.Username, l.Password)
	if err != nil {
		log.Error().Err(err).Msg("login failed")
		return fmt.Errorf("login failed, check your username and password")
	}

	if err := establishSession(ctx, app, resp); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s\n", resp.Username)
	return nil
}

type LogoutCmd struct{}

func (l *LogoutCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	if _, err := app.session.Logout(); err != nil {
		return err
	}

	fmt.Println("Logged out.")
	return nil
}

type WhoamiCmd struct {
	Refresh bool `help:"Refresh the profile from the backend" default:"true"`
}

func (w *WhoamiCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := newApp(globals)
	if err != nil {
		return err
	}

	sess := app.session.Current()
	if !sess.IsAuthenticated() {
		fmt.Println("Not logged in.")
		return nil
	}

	if w.Refresh {
		profile, err := app.client.Me(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("could not refresh profile, showing stored session")
		} else {
			if sess, err = app.session.SetUser(*profile); err != nil {
				return err
			}
		}
	}

	fmt.Printf("Logged in as %s <%s> (id %d)\n", sess.User.Username, sess.User.Email, sess.User.ID)
	return nil
}
