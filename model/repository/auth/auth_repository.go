package auth

import (
	"gorm.io/gorm"

	entity "github.com/amanda-debetaz/PandaExpressPOS/model/entity"
)

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// FindActiveToken returns a non-revoked API token by its token string.
func (r *AuthRepository) FindActiveToken(token string) (*entity.ApiToken, error) {
	var t entity.ApiToken
	err := r.db.Where("token = ? AND revoked = 0", token).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindEmployee returns an active employee by ID.
func (r *AuthRepository) FindEmployee(employeeID uint) (*entity.Employee, error) {
	var e entity.Employee
	err := r.db.Where("employee_id = ? AND is_active = 1", employeeID).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// FindEmployeeByCredentials returns an active employee matching id and stored
// password hash (terminals send the hash, never the clear password).
func (r *AuthRepository) FindEmployeeByCredentials(employeeID uint, passwordHash string) (*entity.Employee, error) {
	var e entity.Employee
	err := r.db.Where("employee_id = ? AND password_hash = ? AND is_active = 1", employeeID, passwordHash).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}
