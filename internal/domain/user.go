package domain

// User field names as they appear on the wire and in the users table.
const (
	UserFieldName         = "name"
	UserFieldEmail        = "email"
	UserFieldStreetNumber = "street_number"
	UserFieldStreetName   = "street_name"
	UserFieldCity         = "city"
	UserFieldState        = "state"
	UserFieldZipCode      = "zip_code"
)

// User is a customer with a denormalized postal address. Only Name is
// required; the remaining fields are nil when unset.
type User struct {
	ID           int64
	Name         string
	Email        *string
	StreetNumber *int64
	StreetName   *string
	City         *string
	State        *string
	ZipCode      *string
}

// UserPatch is a validated user payload. In a full parse every required field
// is set; in a partial parse only the supplied fields are.
type UserPatch struct {
	Name         Optional[string]
	Email        Optional[string]
	StreetNumber Optional[int64]
	StreetName   Optional[string]
	City         Optional[string]
	State        Optional[string]
	ZipCode      Optional[string]
}

// ParseUser validates a user payload. With partial set, absent fields are
// neither required nor defaulted.
func ParseUser(p Payload, partial bool) (UserPatch, error) {
	r := newSchemaReader(p, partial)
	patch := UserPatch{
		Name:         r.String(UserFieldName, true, "max=50"),
		Email:        r.String(UserFieldEmail, false, "max=200"),
		StreetNumber: r.Int(UserFieldStreetNumber, false, ""),
		StreetName:   r.String(UserFieldStreetName, false, "max=100"),
		City:         r.String(UserFieldCity, false, "max=100"),
		State:        r.String(UserFieldState, false, "max=100"),
		ZipCode:      r.String(UserFieldZipCode, false, "max=20"),
	}
	if err := r.err(); err != nil {
		return UserPatch{}, err
	}
	return patch, nil
}

// User builds a new, unsaved User from a fully validated patch.
func (p UserPatch) User() *User {
	u := &User{}
	p.Apply(u)
	return u
}

// Apply copies the supplied fields onto u.
func (p UserPatch) Apply(u *User) {
	if p.Name.Set && p.Name.Value != nil {
		u.Name = *p.Name.Value
	}
	p.Email.applyTo(&u.Email)
	p.StreetNumber.applyTo(&u.StreetNumber)
	p.StreetName.applyTo(&u.StreetName)
	p.City.applyTo(&u.City)
	p.State.applyTo(&u.State)
	p.ZipCode.applyTo(&u.ZipCode)
}

// IsEmpty reports whether the patch supplies no fields.
func (p UserPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Email.Set && !p.StreetNumber.Set && !p.StreetName.Set &&
		!p.City.Set && !p.State.Set && !p.ZipCode.Set
}
