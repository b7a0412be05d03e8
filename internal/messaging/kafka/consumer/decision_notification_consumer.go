package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/events"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/notification"
	notificationerrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/notification/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// DecisionTopics are the topics ConsumeDecisionNotifications subscribes to.
var DecisionTopics = []string{
	events.ChangeRequestDecidedTopic,
	events.TimeOffDecidedTopic,
}

// ConsumeDecisionNotifications pushes a notification to the employee
// whenever a change request or time-off request is decided.
func ConsumeDecisionNotifications(
	ctx context.Context,
	reader MessageReader,
	employees EmployeeFinder,
	sender notification.Sender,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.decision_notifications")
	log.Info("decision notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("decision notification consumer stopped")
				return
			}
			log.Error("fetch decision message failed", zap.Error(err))
			continue
		}

		result, err := handleDecision(ctx, msg, employees, sender)
		switch result {
		case outcomeRetry:
			log.Error("decision notification failed",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			continue
		case outcomeSkip:
			log.Warn("decision message skipped",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit decision message failed", zap.Error(err))
			continue
		}

		if result == outcomeDone {
			log.Info("decision notification sent",
				zap.String("topic", msg.Topic),
				zap.String("key", string(msg.Key)),
			)
		}
	}
}

func handleDecision(ctx context.Context, msg kafkago.Message, employees EmployeeFinder, sender notification.Sender) (outcome, error) {
	companyID, employeeID, title, body, err := decodeDecision(msg)
	if err != nil {
		return outcomeSkip, err
	}

	playerID, result, err := lookupPlayerID(ctx, employees, companyID, employeeID)
	if result != outcomeDone {
		return result, err
	}

	_, err = sender.Send(ctx, notification.Message{
		PlayerIDs: []string{playerID},
		Title:     title,
		Body:      body,
	})
	if err != nil {
		if errors.Is(err, notificationerrors.ErrNotConfigured) {
			return outcomeSkip, err
		}
		return outcomeRetry, err
	}
	return outcomeDone, nil
}

func decodeDecision(msg kafkago.Message) (companyID, employeeID, title, body string, err error) {
	switch msg.Topic {
	case events.ChangeRequestDecidedTopic:
		var e events.ChangeRequestDecidedEvent
		if err = json.Unmarshal(msg.Value, &e); err != nil {
			return
		}
		if e.CompanyID == "" || e.EmployeeID == "" {
			err = fmt.Errorf("change request event %q missing ids", e.ChangeRequestID)
			return
		}
		companyID, employeeID = e.CompanyID, e.EmployeeID
		title = "Timecard change " + e.Status
		body = "Your timecard change request was " + e.Status + "."
		if e.ClockInTime != nil && e.ClockOutTime != nil && e.Status == "approved" {
			body = fmt.Sprintf("Your timecard now reads %s to %s.",
				e.ClockInTime.UTC().Format("Jan 2 15:04"),
				e.ClockOutTime.UTC().Format("Jan 2 15:04"),
			)
		}
	case events.TimeOffDecidedTopic:
		var e events.TimeOffDecidedEvent
		if err = json.Unmarshal(msg.Value, &e); err != nil {
			return
		}
		if e.CompanyID == "" || e.EmployeeID == "" {
			err = fmt.Errorf("time off event %q missing ids", e.TimeOffID)
			return
		}
		companyID, employeeID = e.CompanyID, e.EmployeeID
		status := strings.ToLower(e.Status)
		title = "Time off " + status
		body = fmt.Sprintf("Your %s request for %s to %s was %s.", e.Policy, e.StartDate, e.EndDate, status)
	default:
		err = fmt.Errorf("unexpected topic %q", msg.Topic)
	}
	return
}
