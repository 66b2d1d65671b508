package contact

// Contact belongs to exactly one user via Username. Every field besides the
// record itself is optional; absent fields stay nil.
type Contact struct {
	ID        int64
	Username  string
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

// SearchFilter holds the optional search terms. A nil term contributes no
// clause; a present term is a case-insensitive substring match, with Name
// matching either first or last name.
type SearchFilter struct {
	Name  *string
	Email *string
	Phone *string
}
