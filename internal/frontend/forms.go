package frontend

// MintForm holds the mint inputs. Inputs survive a submission, only Result changes.
type MintForm struct {
	Recipient string  `json:"recipient" form:"recipient"`
	Amount    string  `json:"amount" form:"amount"`
	Result    Display `json:"result"`
}

// BalanceForm holds the balance lookup input. Address survives a submission, only Result changes.
type BalanceForm struct {
	Address string  `json:"address" form:"address"`
	Result  Display `json:"result"`
}
