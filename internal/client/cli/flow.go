package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/stackguard/internal/client/models"
	"github.com/dmitrijs2005/stackguard/internal/client/route"
	"github.com/dmitrijs2005/stackguard/internal/client/validate"
	"github.com/dmitrijs2005/stackguard/internal/common"
	"github.com/dmitrijs2005/stackguard/internal/cryptox"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// SampleKey is offered on the configuration screen for trying the flow.
var SampleKey = "STACKGUARD_PUBLIC_KEY_" + strings.Repeat("A", 75) + "_" +
	"This is a sample public key for testing the StackGuard application verification process."

var signUpFields = []string{"firstName", "lastName", "email", "password", "confirmPassword"}
var signInFields = []string{"email", "password"}

// SignUp shows the sign-up screen and, if the guard allows it, collects and
// submits the form. A successful sign-up lands on the configuration screen.
func (a *App) SignUp(ctx context.Context) error {
	if a.navigate(ctx, route.SignUp) != route.SignUp {
		return nil
	}

	var form validate.SignUpForm
	var err error
	if form.FirstName, err = getSimpleText(a.reader, a.text("prompt.first_name"), a.out); err != nil {
		return err
	}
	if form.LastName, err = getSimpleText(a.reader, a.text("prompt.last_name"), a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, a.text("prompt.email"), a.out); err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.ttyFd, a.text("prompt.password"), a.out)
	if err != nil {
		return err
	}
	// Only the read buffers are wiped; the validator and session work on
	// string copies that stay in memory until collected.
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.reader, a.ttyFd, a.text("prompt.confirm_password"), a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	form.Password, form.ConfirmPassword = string(password), string(confirm)

	if errs := a.validator.SignUp(form); !errs.Valid() {
		a.printFieldErrors(errs, signUpFields)
		return nil
	}

	if err := a.wait(ctx); err != nil {
		return err
	}

	err = a.session.SignUp(ctx, models.User{
		Email:     form.Email,
		Password:  form.Password,
		FirstName: form.FirstName,
		LastName:  form.LastName,
	})
	switch {
	case errors.Is(err, common.ErrAccountExists):
		a.banner(a.text("auth.account_exists"))
		return nil
	case err != nil:
		a.unexpected(ctx, "sign up failed", err)
		return err
	}

	a.success(a.text("flow.signed_up"))
	a.navigate(ctx, route.Configuration)
	return nil
}

// SignIn shows the sign-in screen and submits the credentials. A successful
// sign-in lands on the configuration screen; a user whose key is still
// stored can continue with the dashboard command.
func (a *App) SignIn(ctx context.Context) error {
	if a.navigate(ctx, route.SignIn) != route.SignIn {
		return nil
	}

	var form validate.SignInForm
	var err error
	if form.Email, err = getSimpleText(a.reader, a.text("prompt.email"), a.out); err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.ttyFd, a.text("prompt.password"), a.out)
	if err != nil {
		return err
	}
	// As in SignUp, the string copy in form is not wiped.
	defer common.WipeByteArray(password)
	form.Password = string(password)

	if errs := a.validator.SignIn(form); !errs.Valid() {
		a.printFieldErrors(errs, signInFields)
		return nil
	}

	if err := a.wait(ctx); err != nil {
		return err
	}

	err = a.session.SignIn(ctx, form.Email, form.Password)
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		a.banner(a.text("auth.invalid_credentials"))
		return nil
	case err != nil:
		a.unexpected(ctx, "sign in failed", err)
		return err
	}

	a.success(a.text("flow.signed_in"))
	a.navigate(ctx, route.Configuration)
	return nil
}

// Configure shows the configuration screen and stores a public key, either
// typed by the user or the sample key. The key is stored as entered; only
// the length check looks at the trimmed value.
func (a *App) Configure(ctx context.Context, sample bool) error {
	if a.navigate(ctx, route.Configuration) != route.Configuration {
		return nil
	}

	key := SampleKey
	if !sample {
		var err error
		if key, err = getSimpleText(a.reader, a.text("prompt.public_key"), a.out); err != nil {
			return err
		}
	}

	if msg := a.validator.ConfigKey(key); msg != "" {
		a.banner(msg)
		return nil
	}

	if err := a.wait(ctx); err != nil {
		return err
	}

	if err := a.session.SetConfigKey(ctx, key); err != nil {
		a.unexpected(ctx, "storing key failed", err)
		return err
	}

	a.success(a.text("flow.key_saved"))
	a.navigate(ctx, route.Dashboard)
	return nil
}

func (a *App) Dashboard(ctx context.Context) error {
	a.navigate(ctx, route.Dashboard)
	return nil
}

// Reconfigure forgets the key and returns to the configuration screen. It is
// a dashboard action, so it first checks the dashboard is reachable.
func (a *App) Reconfigure(ctx context.Context) error {
	if !a.guard.Allowed(route.Dashboard) {
		a.navigate(ctx, route.Dashboard)
		return nil
	}

	if err := a.session.ClearConfigKey(ctx); err != nil {
		a.unexpected(ctx, "clearing key failed", err)
		return err
	}

	a.success(a.text("flow.key_cleared"))
	a.navigate(ctx, route.Configuration)
	return nil
}

// SignOut ends the session from the dashboard and returns to sign-up.
func (a *App) SignOut(ctx context.Context) error {
	if !a.guard.Allowed(route.Dashboard) {
		a.navigate(ctx, route.Dashboard)
		return nil
	}

	if err := a.session.SignOut(ctx); err != nil {
		a.unexpected(ctx, "sign out failed", err)
		return err
	}

	a.success(a.text("flow.signed_out"))
	a.navigate(ctx, route.SignUp)
	return nil
}

// Goto is a raw navigation attempt. Unknown paths land on sign-up.
func (a *App) Goto(ctx context.Context, path string) error {
	a.navigate(ctx, route.Parse(path))
	return nil
}

// navigate asks the guard where a request for r ends up, renders that screen
// and returns it.
func (a *App) navigate(ctx context.Context, r route.Route) route.Route {
	shown, d := a.guard.Resolve(r)
	if d != route.Allow {
		a.log.Debug(ctx, "navigation redirected", "requested", r.String(), "decision", d.String())
		fmt.Fprintln(a.out, a.styles.muted.Render(a.catalog.T("flow.redirected", map[string]any{"Path": shown.String()})))
	}
	a.current = shown
	a.render(ctx, shown)
	return shown
}

func (a *App) render(ctx context.Context, r route.Route) {
	switch r {
	case route.SignUp:
		a.header("screen.signup.title")
	case route.SignIn:
		a.header("screen.signin.title")
	case route.Configuration:
		a.header("screen.configuration.title")
		fmt.Fprintln(a.out, a.styles.muted.Render(a.text("screen.configuration.hint")))
	case route.Dashboard:
		a.header("screen.dashboard.title")
		p, _ := a.session.CurrentUser()
		fmt.Fprintln(a.out, a.catalog.T("screen.dashboard.welcome", map[string]any{"FirstName": p.FirstName}))

		key, err := a.session.ConfigKey(ctx)
		if err != nil {
			a.log.Warn(ctx, "reading key for fingerprint", "error", err)
			return
		}
		fmt.Fprintln(a.out, a.styles.muted.Render(a.catalog.T("screen.dashboard.fingerprint",
			map[string]any{"Fingerprint": cryptox.Fingerprint(key)})))
	}
}

func (a *App) helpText() string {
	switch a.current {
	case route.Configuration:
		return a.text("flow.help_configuration")
	case route.Dashboard:
		return a.text("flow.help_dashboard")
	}
	return a.text("flow.help_public")
}

// wait is the pause between submitting a form and its result.
func (a *App) wait(ctx context.Context) error {
	if a.submitDelay <= 0 {
		return nil
	}
	t := time.NewTimer(a.submitDelay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *App) text(id string) string {
	return a.catalog.T(id, nil)
}

func (a *App) header(id string) {
	fmt.Fprintln(a.out, a.styles.header.Render("== "+a.text(id)+" =="))
}

func (a *App) banner(msg string) {
	fmt.Fprintln(a.out, a.styles.banner.Render("! "+msg))
}

func (a *App) success(msg string) {
	fmt.Fprintln(a.out, a.styles.success.Render(msg))
}

func (a *App) printFieldErrors(errs validate.FieldErrors, order []string) {
	for _, field := range order {
		if msg, ok := errs[field]; ok {
			fmt.Fprintln(a.out, a.styles.field.Render(field+": "+msg))
		}
	}
}

func (a *App) unexpected(ctx context.Context, msg string, err error) {
	a.log.Error(ctx, msg, "error", err)
	a.banner(a.text("auth.unexpected"))
}
