package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/mealplanner/internal/common"
	"github.com/dmitrijs2005/mealplanner/internal/logging"
	"github.com/dmitrijs2005/mealplanner/internal/models"
	"github.com/dmitrijs2005/mealplanner/internal/services"
)

// ---- logger ----

type recLogger struct {
	mu     sync.Mutex
	errors []string
}

func (l *recLogger) Info(context.Context, string, ...any) {}
func (l *recLogger) Warn(context.Context, string, ...any) {}
func (l *recLogger) Error(_ context.Context, msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprint(append([]any{msg}, args...)...))
}
func (l *recLogger) With(...any) logging.Logger { return l }

// ---- auth ----

type fakeAuth struct {
	regUser string
	regPass []byte
	regErr  error

	loginUser string
	loginPass []byte
	loginErr  error

	logoutCalls    int
	logoutSessions []*models.Session
}

func (f *fakeAuth) Register(_ context.Context, user string, pass []byte) error {
	f.regUser, f.regPass = user, append([]byte(nil), pass...)
	return f.regErr
}

func (f *fakeAuth) Login(_ context.Context, user string, pass []byte) (*models.Session, error) {
	f.loginUser, f.loginPass = user, append([]byte(nil), pass...)
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return models.NewSession(user), nil
}

func (f *fakeAuth) Logout(_ context.Context, s *models.Session) {
	f.logoutCalls++
	f.logoutSessions = append(f.logoutSessions, s)
}

// ---- meals ----

type fakeMeals struct {
	plan    models.MealPlan
	planErr error

	saved   models.MealPlan
	saveErr error

	setDay  string
	setMeal string
	setErr  error

	askMeals []string
	asked    [][]string
	list     models.GroceryList
	genErr   error
}

func (f *fakeMeals) Plan(context.Context) (models.MealPlan, error) { return f.plan, f.planErr }

func (f *fakeMeals) PlanWeek(_ context.Context, p models.MealPlan) error {
	f.saved = p
	return f.saveErr
}

func (f *fakeMeals) SetMeal(_ context.Context, day, meal string) error {
	f.setDay, f.setMeal = day, meal
	return f.setErr
}

func (f *fakeMeals) GenerateGroceryList(ctx context.Context, ask services.IngredientSource) (models.GroceryList, error) {
	if f.genErr != nil {
		return nil, f.genErr
	}
	for _, m := range f.askMeals {
		got, err := ask(ctx, m)
		if err != nil {
			return nil, err
		}
		f.asked = append(f.asked, got)
	}
	return f.list, nil
}

func (f *fakeMeals) GroceryList(context.Context) (models.GroceryList, error) { return f.list, nil }

// ---- recipes ----

type fakeRecipes struct {
	items   []models.Recipe
	listErr error

	added  []models.Recipe
	addErr error

	editedN int
	edited  models.Recipe
	editErr error

	deletedN  int
	deleteErr error
}

func (f *fakeRecipes) Add(_ context.Context, r models.Recipe) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, r)
	return nil
}

func (f *fakeRecipes) List(context.Context) ([]models.Recipe, error) { return f.items, f.listErr }

func (f *fakeRecipes) Edit(_ context.Context, n int, r models.Recipe) error {
	f.editedN, f.edited = n, r
	return f.editErr
}

func (f *fakeRecipes) Delete(_ context.Context, n int) (models.Recipe, error) {
	f.deletedN = n
	if f.deleteErr != nil {
		return models.Recipe{}, f.deleteErr
	}
	return f.items[n-1], nil
}

func (f *fakeRecipes) FindByName(_ context.Context, name string) (*models.Recipe, error) {
	for i := range f.items {
		if strings.EqualFold(f.items[i].Name, name) {
			return &f.items[i], nil
		}
	}
	return nil, common.ErrNotFound
}

// newTestApp builds an App over the fakes reading the given script. Secrets
// are read from the script too since stdin is never a terminal here.
func newTestApp(t *testing.T, script string) (*App, *bytes.Buffer, *fakeAuth, *fakeMeals, *fakeRecipes, *recLogger) {
	t.Helper()
	stubTerminal(t, false, nil, nil)

	fa, fm, fr, lg := &fakeAuth{}, &fakeMeals{}, &fakeRecipes{}, &recLogger{}
	out := &bytes.Buffer{}
	app := NewApp(fa, fm, fr, lg, strings.NewReader(script), out)
	return app, out, fa, fm, fr, lg
}
