// Package dotenv loads variables from a .env file into the process
// environment.
//
// The file is located by searching the working directory and each of its
// parents ([Find]), parsed with package [github.com/ardnew/denv/lang],
// optionally filtered, and installed with [os.Setenv]. By default a
// variable that already exists in the environment is left alone, so real
// environment variables always take precedence over the file:
//
//	if _, err := dotenv.Load(ctx); err != nil {
//		// no .env file, or it is malformed
//	}
//
// [Read] and [Iter] return the resolved variables without installing them.
// [Var] and [Vars] load the default file at most once per process and then
// read the environment.
//
// # Filters
//
// [WithPrefix] keeps only keys with the given prefix. [WithFilter] keeps
// only the entries for which an expr-lang boolean expression holds. The
// expression sees the variables key, value, and line:
//
//	key startsWith "APP_" && value != ""
//	line > 10 || key in ["HOME", "USER"]
//
// # List variables
//
// Variables named with [WithListVars], such as PATH, are merged instead of
// skipped or replaced: the loaded items are prepended to the existing list.
package dotenv
