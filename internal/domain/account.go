package domain

// Account holds an employee's bank details. It is owned 1:1 by exactly one
// employee and is only ever created through the account service against an
// employee that has no active account.
type Account struct {
	ID            int    `json:"id"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
	IFSCCode      string `json:"ifsc_code"`
	IsDeleted     bool   `json:"-"`
}

// Validate checks the account's required fields.
func (a *Account) Validate() error {
	if a.AccountNumber == "" {
		return ErrEmptyAccountNumber
	}
	return nil
}
