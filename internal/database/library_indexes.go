// Package database - Index bổ sung cho thư viện nội dung (compound campaignId + createdAt)
// phục vụ truy vấn newest-first theo chiến dịch, không định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"adcraft/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateLibraryIndexes tạo index (campaignId, createdAt desc) cho từng collection artifact
// và cho sổ cái credit. Gọi sau CreateIndexes cho từng collection.
func CreateLibraryIndexes(ctx context.Context, db *mongo.Database) error {
	artifactCollections := map[string]string{
		global.MongoDB_ColNames.Captions:     "caption_campaign_created",
		global.MongoDB_ColNames.Images:       "image_campaign_created",
		global.MongoDB_ColNames.Scripts:      "script_campaign_created",
		global.MongoDB_ColNames.Videos:       "video_campaign_created",
		global.MongoDB_ColNames.CreditEvents: "credit_event_campaign_created",
	}

	for colName, indexName := range artifactCollections {
		col := db.Collection(colName)
		if _, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{
				{Key: "campaignId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName(indexName),
		}); err != nil && !isIndexExistsError(err) {
			return err
		}
	}

	// webhook_logs: tra cứu theo eventId của Stripe (idempotency check)
	webhookLogs := db.Collection(global.MongoDB_ColNames.WebhookLogs)
	if _, err := webhookLogs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "eventId", Value: 1},
		},
		Options: options.Index().SetName("webhook_log_event").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
