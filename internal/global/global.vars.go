package global

import (
	"adcraft/config"
	"adcraft/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionNames chứa tên các collection trong MongoDB
type CollectionNames struct {
	Campaigns    string // Tên collection cho chiến dịch marketing
	Captions     string // Tên collection cho caption đã sinh
	Images       string // Tên collection cho ảnh đã sinh
	Scripts      string // Tên collection cho script đã sinh
	Videos       string // Tên collection cho video đã sinh
	CreditEvents string // Tên collection cho sổ cái credit (ledger)
	WebhookLogs  string // Tên collection cho log webhook thanh toán
}

// Các biến toàn cục
var Validate *validator.Validate                             // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                            // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration               // Cấu hình của server
var MongoDB_ColNames CollectionNames = *new(CollectionNames) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
