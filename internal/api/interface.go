// internal/api/interface.go
package api

import (
	"context"

	"github.com/rusenback/smslogs/internal/model"
)

// SMSLogClient is the fetch collaborator of the dashboard; tests swap in fakes
type SMSLogClient interface {
	ListSMSLogs(ctx context.Context) ([]model.LogRecord, error)
}

// Make sure Client implements the interface
var _ SMSLogClient = (*Client)(nil)
