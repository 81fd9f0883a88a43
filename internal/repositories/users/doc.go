// Package users is the credential store: the durable mapping from account
// identifier to password verifier.
//
// # Overview
//
// Records live in a comma-delimited file whose first line is the fixed header
// "identifier,verifier". The store only ever creates the file and appends to
// it; records are never updated or deleted.
//
// Key Types
//
//   - type Repository: contract used by the authenticator
//   - type CSVRepository: flat-file implementation over flatfile.Table
//
// Typical Usage
//
//	repo := users.NewCSVRepository(filepath.Join(dataDir, common.UsersFileName))
//	_ = repo.EnsureInitialized(ctx)
//	acc, err := repo.FindByIdentifier(ctx, "alice@example.com")
//	_ = repo.Insert(ctx, models.Account{Identifier: id, Verifier: v})
//
// Uniqueness is checked by the caller before Insert; the store does not
// enforce it atomically.
package users
