// internal/model/summary.go
package model

// Summary counts records per SMS type
type Summary struct {
	Total      int
	Balance    int
	Deposit    int
	Withdrawal int
	Other      int
}

// Summarize counts the given records by type
func Summarize(records []LogRecord) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		switch r.SMSType {
		case TypeBalance:
			s.Balance++
		case TypeDeposit:
			s.Deposit++
		case TypeWithdrawal:
			s.Withdrawal++
		default:
			s.Other++
		}
	}
	return s
}
