package cli

import (
	"errors"

	"github.com/thenoetrevino/issueboard/internal/api"
	"github.com/thenoetrevino/issueboard/internal/board"
	"github.com/thenoetrevino/issueboard/internal/config"
	"github.com/thenoetrevino/issueboard/internal/database"
	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/services/move"
)

// ErrNeedsDatabase is returned by commands that write issues directly when
// the board is backed by the REST service
var ErrNeedsDatabase = errors.New("command needs the sqlite backend")

// Classify maps an error to the formatter's error code and an exit code
func Classify(err error) (code string, exit int) {
	switch {
	case err == nil:
		return "", ExitSuccess
	case errors.Is(err, board.ErrNotFound),
		errors.Is(err, database.ErrIssueNotFound),
		errors.Is(err, api.ErrNotFound):
		return "ISSUE_NOT_FOUND", ExitNotFound
	case errors.Is(err, database.ErrLabelNotFound):
		return "LABEL_NOT_FOUND", ExitNotFound
	case errors.Is(err, board.ErrInvalidTarget),
		errors.Is(err, models.ErrUnknownColumn):
		return "INVALID_TARGET", ExitValidation
	case errors.Is(err, models.ErrEmptyTitle),
		errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, move.ErrInvalidPolicy):
		return "VALIDATION_ERROR", ExitValidation
	case errors.Is(err, move.ErrMovePending):
		return "MOVE_PENDING", ExitError
	case errors.Is(err, move.ErrPersistenceFailure):
		return "PERSISTENCE_FAILED", ExitError
	case errors.Is(err, ErrNeedsDatabase):
		return "WRONG_BACKEND", ExitUsage
	}
	return "ERROR", ExitError
}

// Fail reports err through the formatter and returns it wrapped with its exit code
func Fail(f *OutputFormatter, err error) error {
	code, exit := Classify(err)
	_ = f.Error(code, err.Error())
	return Exit(exit, err)
}
