package notify

import (
	"encoding/json"
	"fmt"
	"strconv"

	apperrors "returns-notifier/internal/common/errors"
)

// ParseRequest decodes the sanitized request map into its typed form.
// Numeric fields accept numbers or numeric strings and coerce the way a
// loosely-typed producer would expect: non-numeric values become zero.
// The notification type is the only field that must be present and valid.
func ParseRequest(data map[string]interface{}) (*Request, error) {
	req := &Request{
		ResellerID:        intValue(data["resellerId"]),
		ResellerIDRaw:     rawString(data["resellerId"]),
		ClientID:          intValue(data["clientId"]),
		CreatorID:         intValue(data["creatorId"]),
		ExpertID:          intValue(data["expertId"]),
		ComplaintID:       intValue(data["complaintId"]),
		ComplaintNumber:   stringValue(data["complaintNumber"]),
		ConsumptionID:     intValue(data["consumptionId"]),
		ConsumptionNumber: stringValue(data["consumptionNumber"]),
		AgreementNumber:   stringValue(data["agreementNumber"]),
		Date:              stringValue(data["date"]),
	}

	typ := intValue(data["notificationType"])
	if typ == 0 {
		return nil, apperrors.NewValidationError("Empty notificationType")
	}
	req.Type = NotificationType(typ)

	if diff, ok := data["differences"].(map[string]interface{}); ok {
		req.Differences = &Differences{
			From: intValue(diff["from"]),
			To:   intValue(diff["to"]),
		}
	}

	return req, nil
}

// intValue coerces a decoded JSON value to int. Unparseable or absent
// values coerce to zero.
func intValue(v interface{}) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			f, ferr := t.Float64()
			if ferr != nil {
				return 0
			}
			return int(f)
		}
		return int(n)
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			f, ferr := strconv.ParseFloat(t, 64)
			if ferr != nil {
				return 0
			}
			return int(f)
		}
		return n
	default:
		return 0
	}
}

// rawString preserves the textual form of a decoded JSON value. Whole
// floats render without a fractional part so that an integer sent as a
// JSON number round-trips to its natural text.
func rawString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// stringValue coerces a decoded JSON value to its display string. Absent
// values coerce to the empty string.
func stringValue(v interface{}) string {
	return rawString(v)
}
