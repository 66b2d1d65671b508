package address

// Address belongs to exactly one contact via ContactID; ownership by a user
// is only ever transitive through that contact. Country and PostalCode are
// required, the rest are optional.
type Address struct {
	ID         int64
	ContactID  int64
	Street     *string
	City       *string
	Province   *string
	Country    string
	PostalCode string
}
