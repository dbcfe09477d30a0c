// 手动创建管理员账号脚本
//
// 注册接口默认创建普通用户，首次部署时用本脚本初始化管理员。
// 用户名已存在时将其角色提升为管理员。
//
// 用法: go run scripts/create_admin.go <用户名> <密码>

package main

import (
	"log"
	"os"

	"quiz_api_backend/internal/config"
	"quiz_api_backend/internal/model"
	"quiz_api_backend/pkg/database"
	"quiz_api_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) != 3 {
		log.Fatalf("用法: go run scripts/create_admin.go <用户名> <密码>")
	}
	username, password := os.Args[1], os.Args[2]

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("连接数据库失败: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("密码加密失败: %v", err)
	}

	var user model.User
	err = db.Where("username = ?", username).First(&user).Error
	switch {
	case err == nil:
		if err := db.Model(&user).Updates(map[string]interface{}{
			"role":     model.Admin,
			"password": string(hash),
		}).Error; err != nil {
			log.Fatalf("提升管理员失败: %v", err)
		}
		log.Printf("用户 %s 已提升为管理员", username)
	case err == gorm.ErrRecordNotFound:
		user = model.User{
			Username: username,
			Password: string(hash),
			Role:     model.Admin,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("创建管理员失败: %v", err)
		}
		log.Printf("管理员 %s 创建成功 (ID=%d)", username, user.ID)
	default:
		log.Fatalf("查询用户失败: %v", err)
	}
}
