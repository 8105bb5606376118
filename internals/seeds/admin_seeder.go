package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"travelku_backend/internals/configs"
	"travelku_backend/internals/constants"
	userModel "travelku_backend/internals/features/users/user/model"
)

// SeedAdminUser creates the bootstrap admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. It is idempotent: an existing account with that email is
// left untouched.
func SeedAdminUser(db *gorm.DB) {
	email := configs.GetEnv("ADMIN_EMAIL")
	password := configs.GetEnv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⚠️ ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_email = ?", email).Count(&count).Error; err != nil {
		log.Printf("[ERROR] admin seed lookup: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] admin seed hash: %v", err)
		return
	}

	admin := userModel.UserModel{
		UserName:     configs.GetEnv("ADMIN_NAME", "Administrator"),
		UserEmail:    email,
		UserPassword: string(hashed),
		UserRole:     constants.RoleAdmin,
		UserIsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[ERROR] admin seed create: %v", err)
		return
	}
	log.Printf("✅ Admin account seeded: %s", email)
}
