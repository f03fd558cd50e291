package domain

// Company is the seller profile printed on every invoice. It comes from the
// config file, not the database.
type Company struct {
	Name         string
	AddressLines []string
	GSTIN        string
	State        string
	StateCode    string
	Contact      []string
	Email        string
	Website      string
}

// BankDetails is the seller's payment information block.
type BankDetails struct {
	AccountHolder string
	BankName      string
	AccountNo     string
	BranchAndIFSC string
	SwiftCode     string
}
