package creditsvc

import (
	"context"
	"errors"
	"fmt"
	"math"

	basesvc "adcraft/internal/api/base/service"
	campaignmodels "adcraft/internal/api/campaign/models"
	creditmodels "adcraft/internal/api/credit/models"
	"adcraft/internal/common"
	"adcraft/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Chi phí credit cố định cho từng loại nội dung.
const (
	CostCaption int64 = 5
	CostImage   int64 = 5
	CostScript  int64 = 10
	CostVideo   int64 = 10
)

// CostFor trả về chi phí credit cho một loại nội dung.
func CostFor(operation string) (int64, error) {
	switch operation {
	case creditmodels.CreditOpCaption:
		return CostCaption, nil
	case creditmodels.CreditOpImage:
		return CostImage, nil
	case creditmodels.CreditOpScript:
		return CostScript, nil
	case creditmodels.CreditOpVideo:
		return CostVideo, nil
	default:
		return 0, fmt.Errorf("không có chi phí cho operation '%s'", operation)
	}
}

// CalcCredits quy đổi ngân sách sang credit theo bậc, làm tròn xuống:
// dưới 200 hệ số 0.9, từ 200 đến dưới 500 hệ số 1.0, từ 500 hệ số 1.2.
func CalcCredits(budget float64) int64 {
	if budget <= 0 {
		return 0
	}
	switch {
	case budget < 200:
		return int64(math.Floor(budget * 0.9))
	case budget < 500:
		return int64(math.Floor(budget * 1.0))
	default:
		return int64(math.Floor(budget * 1.2))
	}
}

// CreditService quản lý sổ cái credit và projection số dư trên campaign.
type CreditService struct {
	*basesvc.BaseServiceMongoImpl[creditmodels.CreditEvent]
	campaigns *basesvc.BaseServiceMongoImpl[campaignmodels.Campaign]
}

// NewCreditService tạo mới CreditService
func NewCreditService() (*CreditService, error) {
	eventCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CreditEvents)
	if !exist {
		return nil, fmt.Errorf("failed to get credit_events collection: %v", common.ErrNotFound)
	}
	campaignCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Campaigns)
	if !exist {
		return nil, fmt.Errorf("failed to get campaigns collection: %v", common.ErrNotFound)
	}

	return &CreditService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[creditmodels.CreditEvent](eventCol),
		campaigns:            basesvc.NewBaseServiceMongo[campaignmodels.Campaign](campaignCol),
	}, nil
}

// appendEvent ghi một dòng vào sổ cái. Lỗi ghi ledger không rollback projection
// (projection là nguồn sự thật vận hành, ledger là audit trail) — chỉ log error.
func (s *CreditService) appendEvent(ctx context.Context, event creditmodels.CreditEvent) *creditmodels.CreditEvent {
	inserted, err := s.InsertOne(ctx, event)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": event.CampaignID.Hex(),
			"type":        event.Type,
			"amount":      event.Amount,
			"error":       err,
		}).Error("Ghi credit ledger thất bại")
		return nil
	}
	return &inserted
}

// Grant cộng credit cho chiến dịch (cấp ban đầu hoặc nạp thêm) và ghi sổ cái.
// Trả về số dư sau khi cộng.
func (s *CreditService) Grant(ctx context.Context, campaignID primitive.ObjectID, amount int64, operation string) (int64, error) {
	if amount < 0 {
		return 0, common.NewError(common.ErrCodeValidationInput, "Số credit cấp phải không âm", common.StatusBadRequest, nil)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	updated, err := s.campaigns.FindOneAndUpdate(ctx,
		bson.M{"_id": campaignID},
		&basesvc.UpdateData{Inc: map[string]interface{}{"credits": amount}},
		opts,
	)
	if err != nil {
		return 0, err
	}

	s.appendEvent(ctx, creditmodels.CreditEvent{
		CampaignID:   campaignID,
		Type:         creditmodels.CreditEventGrant,
		Amount:       amount,
		Operation:    operation,
		BalanceAfter: updated.Credits,
	})

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID.Hex(),
		"operation":   operation,
		"amount":      amount,
		"balance":     updated.Credits,
	}).Info("✅ Đã cấp credit cho chiến dịch")

	return updated.Credits, nil
}

// isFilterMiss báo hiệu lỗi từ filtered update nghĩa là "không có document khớp"
// (chiến dịch không tồn tại hoặc số dư không đủ), phân biệt với lỗi DB thật.
func isFilterMiss(err error) bool {
	return errors.Is(err, common.ErrNotFound)
}

// Charge trừ credit atomic bằng filtered update: chỉ match khi số dư đủ,
// nên hai request chạy đua không bao giờ đẩy số dư xuống âm.
// Trả về ErrInsufficientCredits khi số dư không đủ.
func (s *CreditService) Charge(ctx context.Context, campaignID primitive.ObjectID, cost int64, operation string, artifactID primitive.ObjectID) (int64, error) {
	if cost <= 0 {
		return 0, common.NewError(common.ErrCodeValidationInput, "Chi phí phải dương", common.StatusBadRequest, nil)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	updated, err := s.campaigns.FindOneAndUpdate(ctx,
		bson.M{"_id": campaignID, "credits": bson.M{"$gte": cost}},
		&basesvc.UpdateData{Inc: map[string]interface{}{"credits": -cost}},
		opts,
	)
	if err != nil {
		// Chỉ disambiguate khi filter không match; lỗi DB khác trả nguyên trạng
		// để không báo nhầm thành hết credit.
		if !isFilterMiss(err) {
			return 0, err
		}
		// Không match: phân biệt chiến dịch không tồn tại với số dư không đủ
		exists, existsErr := s.campaigns.DocumentExists(ctx, map[string]interface{}{"_id": campaignID})
		if existsErr == nil && exists {
			return 0, common.ErrInsufficientCredits
		}
		return 0, common.ErrNotFound
	}

	s.appendEvent(ctx, creditmodels.CreditEvent{
		CampaignID:   campaignID,
		Type:         creditmodels.CreditEventCharge,
		Amount:       -cost,
		Operation:    operation,
		ArtifactID:   artifactID,
		BalanceAfter: updated.Credits,
	})

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID.Hex(),
		"operation":   operation,
		"cost":        cost,
		"balance":     updated.Credits,
	}).Info("Đã trừ credit cho lượt sinh nội dung")

	return updated.Credits, nil
}

// Refund hoàn credit sau một charge mà bước commit artifact thất bại.
func (s *CreditService) Refund(ctx context.Context, campaignID primitive.ObjectID, amount int64, operation string) (int64, error) {
	if amount <= 0 {
		return 0, common.NewError(common.ErrCodeValidationInput, "Số credit hoàn phải dương", common.StatusBadRequest, nil)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	updated, err := s.campaigns.FindOneAndUpdate(ctx,
		bson.M{"_id": campaignID},
		&basesvc.UpdateData{Inc: map[string]interface{}{"credits": amount}},
		opts,
	)
	if err != nil {
		return 0, err
	}

	s.appendEvent(ctx, creditmodels.CreditEvent{
		CampaignID:   campaignID,
		Type:         creditmodels.CreditEventRefund,
		Amount:       amount,
		Operation:    operation,
		BalanceAfter: updated.Credits,
	})

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID.Hex(),
		"operation":   operation,
		"amount":      amount,
		"balance":     updated.Credits,
	}).Warn("Đã hoàn credit do commit artifact thất bại")

	return updated.Credits, nil
}

// Balance đọc số dư hiện tại của chiến dịch.
func (s *CreditService) Balance(ctx context.Context, campaignID primitive.ObjectID) (int64, error) {
	campaign, err := s.campaigns.FindOneById(ctx, campaignID)
	if err != nil {
		return 0, err
	}
	return campaign.Credits, nil
}
