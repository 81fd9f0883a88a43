package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/mealplanner/internal/logging"
	"github.com/dmitrijs2005/mealplanner/internal/models"
	"github.com/dmitrijs2005/mealplanner/internal/services"
)

type App struct {
	authService   services.AuthService
	mealService   services.MealService
	recipeService services.RecipeService
	log           logging.Logger
	session       *models.Session
	reader        *bufio.Reader
	out           io.Writer
}

// NewApp wires the services into an App reading commands from in and
// writing to out.
func NewApp(
	as services.AuthService,
	ms services.MealService,
	rs services.RecipeService,
	log logging.Logger,
	in io.Reader,
	out io.Writer,
) *App {
	return &App{
		authService:   as,
		mealService:   ms,
		recipeService: rs,
		log:           log,
		reader:        bufio.NewReader(in),
		out:           out,
	}
}

// Run blocks in the REPL until the user exits or input ends. An open session
// is closed on the way out.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to Meal Planner (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out, a.log)

	if a.isLoggedIn() {
		a.authService.Logout(ctx, a.session)
		a.session = nil
	}
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.Identifier)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
