// Package cli provides the interactive meal planner front end.
//
// An App holds the services built by cmd/cli and the session of the signed-in
// user, if any. App.Run starts a line-oriented REPL that shows the anonymous
// menu (register, login, exit) until a login succeeds, then the main menu:
//
//   - plan      enter a meal for every day of the week
//   - view      print the current plan
//   - grocery   build and save a grocery list from the plan
//   - recipes   open the recipe menu (add, list, edit, delete)
//   - groceries print the last generated grocery list
//   - setday    change the meal for a single day
//   - logout
//
// Every command also answers to its menu number. Handlers print their own
// outcome; storage faults are logged in full and shown as a generic line.
package cli
