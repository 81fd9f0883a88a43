package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/mealplanner/internal/buildinfo"
	"github.com/dmitrijs2005/mealplanner/internal/cli"
	"github.com/dmitrijs2005/mealplanner/internal/config"
	"github.com/dmitrijs2005/mealplanner/internal/cryptox"
	"github.com/dmitrijs2005/mealplanner/internal/logging"
	"github.com/dmitrijs2005/mealplanner/internal/services"
	"github.com/dmitrijs2005/mealplanner/internal/storage"
)

func main() {
	os.Exit(run())
}

func run() int {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg := config.LoadConfig()
	level := logging.ParseLevel(cfg.LogLevel)

	var log logging.Logger
	fileLog, closer, err := logging.NewFileLogger(cfg.LogDir, cfg.LogFile, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: cannot open log file, logging to stderr: %v\n", err)
		log = logging.NewStderrLogger(level)
	} else {
		defer closer.Close()
		log = fileLog
	}

	log.Info(ctx, "Application started.", "version", buildinfo.Version)

	repos, err := storage.Init(ctx, cfg.DataDir, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot initialize storage in %q: %v\n", cfg.DataDir, err)
		return 1
	}

	hasher := cryptox.NewBcryptHasher(cfg.BcryptCost)
	authService := services.NewAuthService(repos.Users, hasher, log)
	recipeService := services.NewRecipeService(repos.Recipes, log)
	mealService := services.NewMealService(repos.MealPlan, repos.Grocery, recipeService, log)

	app := cli.NewApp(authService, mealService, recipeService, log, os.Stdin, os.Stdout)
	app.Run(ctx)

	log.Info(ctx, "Application terminated.")
	return 0
}
