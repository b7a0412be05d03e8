package consumer

import (
	"context"
	"errors"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/employee"

	kafkago "github.com/segmentio/kafka-go"
	"gorm.io/gorm"
)

// MessageReader is the subset of *kafkago.Reader the consumers use.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// EmployeeFinder resolves the push target of an event's employee.
type EmployeeFinder interface {
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*employee.Employee, error)
}

// outcome tells the loop whether a message may be committed.
type outcome int

const (
	outcomeDone outcome = iota
	outcomeSkip
	outcomeRetry
)

func lookupPlayerID(ctx context.Context, employees EmployeeFinder, companyID, employeeID string) (string, outcome, error) {
	empl, err := employees.FindByIDAndCompany(ctx, companyID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", outcomeSkip, err
		}
		return "", outcomeRetry, err
	}
	if empl.PushPlayerID == "" {
		return "", outcomeSkip, nil
	}
	return empl.PushPlayerID, outcomeDone, nil
}
