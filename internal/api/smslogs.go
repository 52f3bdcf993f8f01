// internal/api/smslogs.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/rusenback/smslogs/internal/model"
)

// ListSMSLogs fetches all SMS log records in one request
func (c *Client) ListSMSLogs(ctx context.Context) ([]model.LogRecord, error) {
	body, err := c.getRaw(ctx, SMSLogsPath)
	if err != nil {
		return nil, err
	}

	records, err := DecodeLogs(body)
	if err != nil {
		return nil, err
	}
	c.log.WithField("count", len(records)).Debug("SMS logs decoded")
	return records, nil
}

// DecodeLogs normalizes a response body into records.
// Accepted shapes: an array of records, or an object with a "results" array.
// null, scalars, and objects without results (or with null results) give an
// empty list. A results field that is not an array, or records of the wrong
// shape, give ErrMalformedResponse.
func DecodeLogs(body []byte) ([]model.LogRecord, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return []model.LogRecord{}, nil
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: body is not valid JSON", ErrMalformedResponse)
	}

	switch body[0] {
	case '[':
		return decodeRecords(body)
	case '{':
		var envelope struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		results := bytes.TrimSpace(envelope.Results)
		if len(results) == 0 || bytes.Equal(results, []byte("null")) {
			return []model.LogRecord{}, nil
		}
		if results[0] != '[' {
			return nil, fmt.Errorf("%w: results is not an array", ErrMalformedResponse)
		}
		return decodeRecords(results)
	default:
		return []model.LogRecord{}, nil
	}
}

func decodeRecords(raw []byte) ([]model.LogRecord, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	records := make([]model.LogRecord, 0, len(items))
	for i, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			return nil, fmt.Errorf("%w: record %d is not an object", ErrMalformedResponse, i)
		}
		var r model.LogRecord
		if err := json.Unmarshal(item, &r); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedResponse, i, err)
		}
		records = append(records, r)
	}
	return records, nil
}
