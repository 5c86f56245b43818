package dotenv

import "github.com/ardnew/denv/lang"

// Predefined errors (sentinel values).
var (
	ErrNotFound  = lang.NewError("dotenv file not found")
	ErrOpen      = lang.NewError("open dotenv file")
	ErrFilter    = lang.NewError("invalid filter expression")
	ErrInstall   = lang.NewError("install variable")
	ErrUndefined = lang.NewError("variable not defined")
)
