package seeder

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"Sistem-Manajemen-HR/models"
	"Sistem-Manajemen-HR/repository"
)

// SeedAdminUser membuat satu akun admin bootstrap kalau belum ada.
// Dipanggil dari main saat SEED_ADMIN=true.
func SeedAdminUser(userRepo repository.UserRepository) {
	log.Println("🌱 Memulai seeding admin...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminEmail := "admin@gmail.com"
	existing, err := userRepo.FindUserByEmail(ctx, adminEmail)
	if err != nil {
		log.Fatalf("❌ Gagal memeriksa user admin: %v", err)
	}
	if existing != nil {
		log.Println("✅ User admin sudah ada, seeding dilewati.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Gagal hash password: %v", err)
	}

	newAdmin := &models.User{
		Name:     "Admin",
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
	}

	if _, err := userRepo.CreateUser(ctx, newAdmin); err != nil {
		log.Fatalf("❌ Gagal menyimpan user admin: %v", err)
	}

	log.Printf("✔ User admin (%s) berhasil ditambahkan.", adminEmail)
}
