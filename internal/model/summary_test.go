package model

import "testing"

func TestSummarize(t *testing.T) {
	recs := []LogRecord{
		{SMSType: TypeBalance},
		{SMSType: TypeDeposit},
		{SMSType: TypeDeposit},
		{SMSType: "promo"},
		{},
	}

	s := Summarize(recs)
	want := Summary{Total: 5, Balance: 1, Deposit: 2, Withdrawal: 0, Other: 2}
	if s != want {
		t.Errorf("expected %+v, got %+v", want, s)
	}
}
