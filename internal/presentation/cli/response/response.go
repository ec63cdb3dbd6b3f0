package response

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/sangkips/trademarket/pkg/apperror"
	"github.com/sangkips/trademarket/pkg/pagination"
)

// CommandResponse represents the JSON document every command prints
type CommandResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Kind    string      `json:"kind,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// Meta contains metadata about the response
type Meta struct {
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id"`
}

func newMeta() *Meta {
	return &Meta{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: uuid.New().String(),
	}
}

// Process exit codes per error kind
const (
	ExitInternal        = 1
	ExitInvalidArgument = 2
	ExitNotFound        = 3
	ExitConflict        = 4
	ExitPersistence     = 5
)

// ExitCode maps an error kind onto the process exit status
func ExitCode(kind apperror.Kind) int {
	switch kind {
	case apperror.KindInvalidArgument:
		return ExitInvalidArgument
	case apperror.KindNotFound:
		return ExitNotFound
	case apperror.KindConflict:
		return ExitConflict
	case apperror.KindPersistence:
		return ExitPersistence
	default:
		return ExitInternal
	}
}

// Success writes a success response to the app's output
func Success(c *cli.Context, message string, data interface{}) error {
	return write(c.App.Writer, CommandResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    newMeta(),
	})
}

// SuccessWithPagination writes a success response carrying a paginated result
func SuccessWithPagination[T any](c *cli.Context, message string, result *pagination.PaginatedResult[T]) error {
	return Success(c, message, result)
}

// Error writes an error response to the app's error output and returns an
// exit error carrying the matching status.
func Error(c *cli.Context, err error) error {
	appErr := apperror.GetAppError(err)
	message := appErr.Message
	if appErr.Kind == apperror.KindPersistence || appErr.Kind == apperror.KindInternal {
		message = appErr.Error()
	}

	resp := CommandResponse{
		Success: false,
		Message: message,
		Kind:    appErr.Kind.String(),
		Meta:    newMeta(),
	}
	if len(appErr.Errors) > 0 {
		resp.Errors = appErr.Errors
	}

	if werr := write(c.App.ErrWriter, resp); werr != nil {
		return werr
	}
	return cli.Exit("", ExitCode(appErr.Kind))
}

func write(w io.Writer, resp CommandResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
