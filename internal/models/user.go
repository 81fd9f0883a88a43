package models

// Account is one stored credential record. Verifier is the self-describing
// password digest; the plaintext secret is never kept.
type Account struct {
	Identifier string
	Verifier   string
}
