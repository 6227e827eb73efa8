// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"modernc.org/sqlite"
)

// SQLiteFoldFunc is the SQL function that lower-cases a letter on SQLite.
// The built-in LOWER only maps A-Z.
const SQLiteFoldFunc = "fold_letter"

func init() {
	// Must be deterministic to appear in an index expression.
	if err := sqlite.RegisterDeterministicScalarFunction(SQLiteFoldFunc, 1, foldLetter); err != nil {
		panic(fmt.Sprintf("db: register %s: %v", SQLiteFoldFunc, err))
	}
}

func foldLetter(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return FoldLetter(v), nil
	case []byte:
		return FoldLetter(string(v)), nil
	default:
		return nil, fmt.Errorf("%s: unsupported argument type %T", SQLiteFoldFunc, v)
	}
}

// FoldLetter is the case folding used for letter uniqueness.
func FoldLetter(s string) string {
	return strings.ToLower(s)
}

// FoldFunc returns the SQL function name that case-folds a letter for driver.
func FoldFunc(driver string) string {
	if driver == DriverSQLite {
		return SQLiteFoldFunc
	}
	return "LOWER"
}
