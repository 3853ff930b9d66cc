package repositories

import (
	"momslove/models"

	"gorm.io/gorm"
)

type PreferenceRepository interface {
	ListByUser(userID uint) ([]models.CategoryPreference, error)
	Replace(userID uint, categoryIDs []uint) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) ListByUser(userID uint) ([]models.CategoryPreference, error) {
	var prefs []models.CategoryPreference
	err := r.db.Where("user_id = ?", userID).Find(&prefs).Error
	return prefs, err
}

// Replace swaps the user's whole preference set inside one transaction so a
// failed insert never leaves the user with an empty set.
func (r *preferenceRepository) Replace(userID uint, categoryIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.CategoryPreference{}).Error; err != nil {
			return err
		}
		for _, categoryID := range categoryIDs {
			pref := models.CategoryPreference{UserID: userID, CategoryID: categoryID}
			if err := tx.Create(&pref).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
