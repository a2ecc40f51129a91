package campaignsvc

import (
	"context"
	"fmt"

	basesvc "adcraft/internal/api/base/service"
	campaignmodels "adcraft/internal/api/campaign/models"
	creditmodels "adcraft/internal/api/credit/models"
	creditsvc "adcraft/internal/api/credit/service"
	"adcraft/internal/common"
	"adcraft/internal/global"

	"github.com/sirupsen/logrus"
)

// CampaignService là service quản lý chiến dịch marketing
type CampaignService struct {
	*basesvc.BaseServiceMongoImpl[campaignmodels.Campaign]
	creditService *creditsvc.CreditService
}

// NewCampaignService tạo mới CampaignService
func NewCampaignService() (*CampaignService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Campaigns)
	if !exist {
		return nil, fmt.Errorf("failed to get campaigns collection: %v", common.ErrNotFound)
	}

	creditService, err := creditsvc.NewCreditService()
	if err != nil {
		return nil, fmt.Errorf("failed to create credit service: %v", err)
	}

	return &CampaignService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[campaignmodels.Campaign](collection),
		creditService:        creditService,
	}, nil
}

// CreateWithInitialCredits tạo chiến dịch mới và cấp credit ban đầu từ ngân sách.
// Campaign được insert với credits = 0, sau đó cấp qua CreditService để
// mọi biến động số dư đều có dòng tương ứng trong sổ cái.
func (s *CampaignService) CreateWithInitialCredits(ctx context.Context, campaign campaignmodels.Campaign) (campaignmodels.Campaign, error) {
	campaign.Credits = 0
	campaign.PaymentStatus = campaignmodels.PaymentStatusPending

	inserted, err := s.InsertOne(ctx, campaign)
	if err != nil {
		return campaignmodels.Campaign{}, err
	}

	initial := creditsvc.CalcCredits(inserted.Budget)
	if initial > 0 {
		balance, err := s.creditService.Grant(ctx, inserted.ID, initial, creditmodels.CreditOpInitial)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": inserted.ID.Hex(),
				"budget":      inserted.Budget,
				"error":       err,
			}).Error("Cấp credit ban đầu thất bại")
			return campaignmodels.Campaign{}, err
		}
		inserted.Credits = balance
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": inserted.ID.Hex(),
		"name":        inserted.Name,
		"budget":      inserted.Budget,
		"credits":     inserted.Credits,
	}).Info("✅ Đã tạo chiến dịch mới")

	return inserted, nil
}
