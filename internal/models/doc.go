// Package models defines the records the meal planner stores and passes
// between layers: accounts, sessions, weekly meal plans, recipes and grocery
// lists.
package models
