package cmd

import (
	"github.com/ardnew/denv/dotenv"
	"github.com/ardnew/denv/lang"
)

// Predefined errors (sentinel values).
var (
	ErrMarshal     = lang.NewError("marshal output")
	ErrWriteConfig = lang.NewError("write configuration file")
	ErrFileExists  = lang.NewError("file exists (use --force to overwrite)")
	ErrUndefined   = dotenv.ErrUndefined
	ErrNoCommand   = lang.NewError("no command given")
	ErrExec        = lang.NewError("run command")
)
