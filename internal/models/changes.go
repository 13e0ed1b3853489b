package models

// UserUpdate carries the fields of a partial user update. Nil fields are left untouched.
// Password is stored exactly as given; callers that want a hash must hash it first.
type UserUpdate struct {
	Name        *string
	Email       *string
	Password    *string
	PhoneNumber *string
	Gender      *Gender
}

// Columns returns the changed fields keyed by column name.
func (u UserUpdate) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Email != nil {
		cols["email"] = *u.Email
	}
	if u.Password != nil {
		cols["password"] = *u.Password
	}
	if u.PhoneNumber != nil {
		cols["phone_number"] = *u.PhoneNumber
	}
	if u.Gender != nil {
		cols["gender"] = *u.Gender
	}
	return cols
}

// Apply copies the changed fields onto user.
func (u UserUpdate) Apply(user *User) {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.Password != nil {
		user.Password = *u.Password
	}
	if u.PhoneNumber != nil {
		user.PhoneNumber = *u.PhoneNumber
	}
	if u.Gender != nil {
		user.Gender = *u.Gender
	}
}

// EmployeeUpdate carries the fields of a partial employee update.
// The owning admin is deliberately absent: it is fixed at creation.
type EmployeeUpdate struct {
	Name        *string
	Email       *string
	Gender      *Gender
	Age         *int
	Role        *Role
	PhoneNumber *string
	JoiningDate *string
}

// Columns returns the changed fields keyed by column name.
func (u EmployeeUpdate) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Email != nil {
		cols["email"] = *u.Email
	}
	if u.Gender != nil {
		cols["gender"] = *u.Gender
	}
	if u.Age != nil {
		cols["age"] = *u.Age
	}
	if u.Role != nil {
		cols["role"] = *u.Role
	}
	if u.PhoneNumber != nil {
		cols["phone_number"] = *u.PhoneNumber
	}
	if u.JoiningDate != nil {
		cols["joining_date"] = *u.JoiningDate
	}
	return cols
}

// Apply copies the changed fields onto e.
func (u EmployeeUpdate) Apply(e *Employee) {
	if u.Name != nil {
		e.Name = *u.Name
	}
	if u.Email != nil {
		e.Email = *u.Email
	}
	if u.Gender != nil {
		e.Gender = *u.Gender
	}
	if u.Age != nil {
		e.Age = *u.Age
	}
	if u.Role != nil {
		e.Role = *u.Role
	}
	if u.PhoneNumber != nil {
		e.PhoneNumber = *u.PhoneNumber
	}
	if u.JoiningDate != nil {
		e.JoiningDate = *u.JoiningDate
	}
}
