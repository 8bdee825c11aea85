package homework_statuses

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/ilyadubrovsky/homework-bot/internal/domain"
	ierrors "github.com/ilyadubrovsky/homework-bot/internal/errors"
)

// CheckResponse validates a decoded homework statuses answer. When only
// current_date is missing it returns a usable response together with a
// MissingOptionalKey deviation.
func CheckResponse(raw any) (domain.Response, error) {
	response, ok := raw.(map[string]any)
	if !ok {
		return domain.Response{}, ierrors.TypeMismatch(fmt.Sprintf("response is %T, not an object", raw))
	}

	rawHomeworks, ok := response[domain.KeyHomeworks]
	if !ok {
		return domain.Response{}, ierrors.Endpoint(fmt.Sprintf("response missing key `%s`", domain.KeyHomeworks), nil)
	}

	homeworks, ok := rawHomeworks.([]any)
	if !ok {
		return domain.Response{}, ierrors.Endpoint(
			fmt.Sprintf("response[%q] is %T, not a list", domain.KeyHomeworks, rawHomeworks), nil,
		)
	}

	result := domain.Response{Homeworks: homeworks}

	rawCurrentDate, ok := response[domain.KeyCurrentDate]
	if !ok {
		return result, ierrors.MissingOptionalKey(domain.KeyCurrentDate)
	}

	currentDate, err := toTimestamp(rawCurrentDate)
	if err != nil {
		return domain.Response{}, ierrors.Endpoint(fmt.Sprintf("response[%q] is invalid", domain.KeyCurrentDate), err)
	}
	result.CurrentDate = &currentDate

	return result, nil
}

func toTimestamp(v any) (int64, error) {
	switch value := v.(type) {
	case json.Number:
		return value.Int64()
	case float64:
		if value != math.Trunc(value) {
			return 0, fmt.Errorf("%v is not an integer", value)
		}
		return int64(value), nil
	case int:
		return int64(value), nil
	case int64:
		return value, nil
	default:
		return 0, fmt.Errorf("%T is not an integer", v)
	}
}
