package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/mealplanner/internal/logging"
)

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	recipeExec

	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	PlanWeek(ctx context.Context) error
	ViewPlan(ctx context.Context) error
	GenerateGroceryList(ctx context.Context) error
	ShowGroceryList(ctx context.Context) error
	SetDay(ctx context.Context, args []string) error
}

// recipeExec is the part of execIface used by the recipe menu.
type recipeExec interface {
	AddRecipe(ctx context.Context) error
	ListRecipes(ctx context.Context) error
	EditRecipe(ctx context.Context) error
	DeleteRecipe(ctx context.Context) error
}

const (
	anonymousMenu = `
=== User Menu ===
1. Register
2. Login
3. Exit`

	mainMenu = `
=== Main Menu ===
1. Plan Meals
2. View Meal Plan
3. Generate Grocery List
4. Manage Recipes
5. Logout
6. View Last Grocery List
(setday <day> <meal> changes a single day)`

	recipeMenu = `
=== Recipe Menu ===
1. Add Recipe
2. View Recipes
3. Edit Recipe
4. Delete Recipe
5. Back to Main Menu`
)

// runREPL reads commands from reader and dispatches them to a until the user
// exits or input ends. Menus and prompts go to out, which should be the
// writer the handlers print to.
//
// The menu is printed on start, after every login or logout, and on "help".
// Commands accept either the menu number or the word:
//
//	Not logged in:  1|register  2|login  3|exit|quit
//	Logged in:      1|plan  2|view  3|grocery  4|recipes  5|logout  6|groceries
//	                setday  exit|quit
//
// Errors returned by handlers are ignored here since handlers report their
// own outcome. A panicking handler is logged and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer, log logging.Logger) {
	shownFor := !a.isLoggedIn()

	for {
		if ctx.Err() != nil {
			return
		}

		if shownFor != a.isLoggedIn() {
			printMenu(out, a.isLoggedIn())
			shownFor = a.isLoggedIn()
		}

		fmt.Fprintln(out, fmt.Sprintf("mp%s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		if quit := dispatch(ctx, a, parts, reader, out, log); quit {
			fmt.Fprintln(out, "Goodbye!")
			return
		}
	}
}

func printMenu(out io.Writer, loggedIn bool) {
	if loggedIn {
		fmt.Fprintln(out, mainMenu)
	} else {
		fmt.Fprintln(out, anonymousMenu)
	}
}

func dispatch(ctx context.Context, a execIface, parts []string, reader *bufio.Reader, out io.Writer, log logging.Logger) (quit bool) {
	cmd := strings.ToLower(parts[0])

	defer func() {
		if r := recover(); r != nil {
			log.Error(ctx, "command panicked", "command", cmd, "panic", r)
			fmt.Fprintln(out, "Something went wrong. Please try again.")
			quit = false
		}
	}()

	if cmd == "help" {
		printMenu(out, a.isLoggedIn())
		return false
	}
	if cmd == "exit" || cmd == "quit" {
		return true
	}

	if !a.isLoggedIn() {
		switch cmd {
		case "1", "register":
			_ = a.Register(ctx)
		case "2", "login":
			_ = a.Login(ctx)
		case "3":
			return true
		default:
			fmt.Fprintln(out, "Invalid option, please try again.")
		}
		return false
	}

	switch cmd {
	case "1", "plan":
		_ = a.PlanWeek(ctx)
	case "2", "view":
		_ = a.ViewPlan(ctx)
	case "3", "grocery":
		_ = a.GenerateGroceryList(ctx)
	case "4", "recipes":
		runRecipeMenu(ctx, a, reader, out, log)
	case "5", "logout":
		_ = a.Logout(ctx)
	case "6", "groceries":
		_ = a.ShowGroceryList(ctx)
	case "setday":
		_ = a.SetDay(ctx, parts[1:])
	default:
		fmt.Fprintln(out, "Invalid option, please try again.")
	}
	return false
}

// runRecipeMenu loops over the recipe menu until "back" or end of input.
func runRecipeMenu(ctx context.Context, r recipeExec, reader *bufio.Reader, out io.Writer, log logging.Logger) {
	for {
		fmt.Fprintln(out, recipeMenu)
		fmt.Fprintln(out, "recipes> ")
		line, err := readLine(reader)
		if err != nil {
			return
		}

		if back := dispatchRecipe(ctx, r, strings.ToLower(line), out, log); back {
			return
		}
	}
}

func dispatchRecipe(ctx context.Context, r recipeExec, cmd string, out io.Writer, log logging.Logger) (back bool) {
	defer func() {
		if p := recover(); p != nil {
			log.Error(ctx, "recipe command panicked", "command", cmd, "panic", p)
			fmt.Fprintln(out, "Something went wrong. Please try again.")
			back = false
		}
	}()

	switch cmd {
	case "":
	case "1", "add":
		_ = r.AddRecipe(ctx)
	case "2", "list":
		_ = r.ListRecipes(ctx)
	case "3", "edit":
		_ = r.EditRecipe(ctx)
	case "4", "delete":
		_ = r.DeleteRecipe(ctx)
	case "5", "back":
		return true
	default:
		fmt.Fprintln(out, "Invalid option, please try again.")
	}
	return false
}
