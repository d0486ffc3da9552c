package db

import (
	"errors"
)

var (
	ErrNameConflict   = errors.New("db: table already exists")
	ErrTableNotFound  = errors.New("db: table not found")
	ErrInvalidRowType = errors.New("db: invalid row type for table")
	ErrUnknownColumn  = errors.New("db: unknown column")
)
