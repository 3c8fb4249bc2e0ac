package model

// Operator is an account allowed to manage masking presets.
// Oracle IDENTITY column is used for ID generation
type Operator struct {
	// Primary key - Oracle IDENTITY (auto-increment)
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	// Core fields
	Email    string `gorm:"column:email;type:VARCHAR2(255);not null;uniqueIndex:idx_operator_email"` // 이메일 (unique)
	Name     string `gorm:"column:name;type:VARCHAR2(100);not null"`                                 // 이름
	Password string `gorm:"column:password;type:VARCHAR2(60);not null"`                              // bcrypt 해시

	BaseEntity
}

// TableName specifies the table name for Operator
func (*Operator) TableName() string {
	return "operator"
}

// NewOperator creates a new Operator. password must already be hashed.
func NewOperator(name, email, hashedPassword string) *Operator {
	return &Operator{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}
}
