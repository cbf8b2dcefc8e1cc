package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"

	apperrors "sdg-knowledge/internal/errors"
	"sdg-knowledge/internal/models"
	"sdg-knowledge/internal/render"
)

func (a *App) signupCommand() *Command {
	var req models.SignUpRequest

	return &Command{
		Name:    "signup",
		Summary: "Register a new account",
		Usage:   "sdgks signup --username NAME --email EMAIL [--mobile NUMBER] --agree-terms",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("signup", pflag.ContinueOnError)
			fs.StringVar(&req.Username, "username", "", "account username")
			fs.StringVar(&req.Email, "email", "", "email address")
			fs.StringVar(&req.Mobile, "mobile", "", "mobile number")
			fs.BoolVar(&req.AgreedTerms, "agree-terms", false, "agree to the Terms and Conditions")
			return fs
		},
		Run: a.page("signup", func(ctx context.Context, args []string) error {
			if err := exactArgs(args, 0, "sdgks signup [flags]"); err != nil {
				return err
			}
			if req.AgreedTerms {
				var err error
				if req.Password1, err = a.Prompt.Secret("Password: "); err != nil {
					return err
				}
				if req.Password2, err = a.Prompt.Secret("Confirm password: "); err != nil {
					return err
				}
			}

			resp, err := a.Auth.SignUp(ctx, &req)
			if err != nil {
				return err
			}
			a.success("Registration pending. Confirm it with the PIN sent to " + req.Email + ".")
			a.println(render.Muted("Pending token: " + resp.Token))
			return nil
		}),
	}
}

func (a *App) loginCommand() *Command {
	var token, expires string

	return &Command{
		Name:    "login",
		Summary: "Store a session for an issued token",
		Usage:   "sdgks login [--token TOKEN] [--expires RFC3339]",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("login", pflag.ContinueOnError)
			fs.StringVar(&token, "token", "", "auth token (prompted when omitted)")
			fs.StringVar(&expires, "expires", "", "token expiry, read from the token when omitted")
			return fs
		},
		Run: func(ctx context.Context, args []string) error {
			if err := exactArgs(args, 0, "sdgks login [flags]"); err != nil {
				return err
			}

			var expiry time.Time
			if expires != "" {
				var err error
				if expiry, err = time.Parse(time.RFC3339, expires); err != nil {
					return usagef("invalid --expires %q, want RFC3339", expires)
				}
			}
			if token == "" {
				var err error
				if token, err = a.Prompt.Secret("Token: "); err != nil {
					return err
				}
			}

			sess, err := a.Auth.Login(ctx, token, expiry)
			if err != nil {
				return err
			}
			name := "you"
			if sess.UserDetails != nil && sess.UserDetails.Username != "" {
				name = sess.UserDetails.Username
			}
			a.success(fmt.Sprintf("Logged in as %s until %s", name, a.formatTime(*sess.TokenExpiry)))
			return nil
		},
	}
}

func (a *App) logoutCommand() *Command {
	return &Command{
		Name:    "logout",
		Summary: "End the current session",
		Run: func(ctx context.Context, args []string) error {
			if err := a.Auth.Logout(ctx); err != nil {
				return err
			}
			a.success("Logged out")
			return nil
		},
	}
}

func (a *App) statusCommand() *Command {
	return &Command{
		Name:    "status",
		Summary: "Show the current session",
		Run: func(ctx context.Context, args []string) error {
			sess, err := a.Auth.Status(ctx)
			if err != nil {
				if errors.Is(err, apperrors.ErrSessionExpired) {
					a.println(render.Muted("Your session has expired. Log in again."))
					return nil
				}
				if errors.Is(err, apperrors.ErrNotLoggedIn) || errors.Is(err, apperrors.ErrURLMismatch) {
					a.println(render.Muted("Not logged in"))
					return nil
				}
				return err
			}

			isAdmin, err := a.Auth.IsAdmin(ctx)
			if err != nil {
				return err
			}

			rows := [][]string{
				{"Server", sess.URL},
				{"Expires", a.formatTime(*sess.TokenExpiry)},
			}
			if sess.UserDetails != nil {
				rows = append([][]string{{"User", sess.UserDetails.Username}}, rows...)
			}
			rows = append(rows, []string{"Admin", yesNo(isAdmin)})
			a.println(render.Table([]string{"Session", ""}, rows))
			return nil
		},
	}
}

func (a *App) formatTime(t time.Time) string {
	loc := a.Location
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("2006-01-02 15:04")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
