package homework_statuses

import (
	"fmt"

	"github.com/ilyadubrovsky/homework-bot/internal/domain"
	ierrors "github.com/ilyadubrovsky/homework-bot/internal/errors"
)

func ParseStatus(record any) (string, error) {
	homework, err := parseHomework(record)
	if err != nil {
		return "", err
	}

	return homework.String(), nil
}

func parseHomework(record any) (*domain.Homework, error) {
	fields, ok := record.(map[string]any)
	if !ok {
		return nil, ierrors.TypeMismatch(fmt.Sprintf("homework is %T, not an object", record))
	}

	name, err := stringField(fields, domain.KeyHomeworkName)
	if err != nil {
		return nil, err
	}

	rawStatus, err := stringField(fields, domain.KeyStatus)
	if err != nil {
		return nil, err
	}

	status := domain.HomeworkStatus(rawStatus)
	if _, ok = status.Verdict(); !ok {
		return nil, ierrors.UnknownStatus(rawStatus)
	}

	return &domain.Homework{Name: name, Status: status}, nil
}

func stringField(fields map[string]any, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", ierrors.MissingField(key)
	}

	value, ok := raw.(string)
	if !ok {
		return "", ierrors.TypeMismatch(fmt.Sprintf("homework[%q] is %T, not a string", key, raw))
	}

	return value, nil
}
