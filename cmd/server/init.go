package main

import (
	"context"

	"adcraft/config"
	campaignmodels "adcraft/internal/api/campaign/models"
	contentmodels "adcraft/internal/api/content/models"
	creditmodels "adcraft/internal/api/credit/models"
	paymentmodels "adcraft/internal/api/payment/models"
	"adcraft/internal/database"
	"adcraft/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Campaigns = "campaigns"
	global.MongoDB_ColNames.Captions = "captions"
	global.MongoDB_ColNames.Images = "images"
	global.MongoDB_ColNames.Scripts = "scripts"
	global.MongoDB_ColNames.Videos = "videos"
	global.MongoDB_ColNames.CreditEvents = "credit_events"
	global.MongoDB_ColNames.WebhookLogs = "webhook_logs"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Campaigns), campaignmodels.Campaign{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Captions), contentmodels.Caption{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Images), contentmodels.Image{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Scripts), contentmodels.Script{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Videos), contentmodels.Video{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.CreditEvents), creditmodels.CreditEvent{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.WebhookLogs), paymentmodels.WebhookLog{})

	// Index compound (campaignId, createdAt desc) cho truy vấn thư viện newest-first
	if err := database.CreateLibraryIndexes(context.TODO(), db); err != nil {
		logrus.Errorf("Failed to create library indexes: %v", err)
	}
}
