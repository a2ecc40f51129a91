package generationsvc

import (
	"context"
	"encoding/base64"
	"fmt"

	campaignmodels "adcraft/internal/api/campaign/models"
	contentmodels "adcraft/internal/api/content/models"
	creditmodels "adcraft/internal/api/credit/models"
	creditsvc "adcraft/internal/api/credit/service"
	"adcraft/internal/common"
	"adcraft/internal/provider"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CampaignLoader đọc chiến dịch theo ID
type CampaignLoader interface {
	FindOneById(ctx context.Context, id primitive.ObjectID) (campaignmodels.Campaign, error)
}

// CreditLedger trừ/hoàn credit atomic trên chiến dịch và ghi sổ cái
type CreditLedger interface {
	Charge(ctx context.Context, campaignID primitive.ObjectID, cost int64, operation string, artifactID primitive.ObjectID) (int64, error)
	Refund(ctx context.Context, campaignID primitive.ObjectID, amount int64, operation string) (int64, error)
}

// Các store artifact — chỉ cần InsertOne, artifact bất biến sau khi tạo
type CaptionStore interface {
	InsertOne(ctx context.Context, data contentmodels.Caption) (contentmodels.Caption, error)
}
type ScriptStore interface {
	InsertOne(ctx context.Context, data contentmodels.Script) (contentmodels.Script, error)
}
type ImageStore interface {
	InsertOne(ctx context.Context, data contentmodels.Image) (contentmodels.Image, error)
}
type VideoStore interface {
	InsertOne(ctx context.Context, data contentmodels.Video) (contentmodels.Video, error)
}

// GenerationService điều phối pipeline sinh nội dung. Mọi loại nội dung
// đi cùng một hợp đồng: load chiến dịch → kiểm tra số dư (không mutation
// khi thiếu) → gọi provider → trừ credit atomic → ghi artifact, hoàn
// credit nếu bước ghi thất bại.
type GenerationService struct {
	campaigns CampaignLoader
	credits   CreditLedger
	captions  CaptionStore
	scripts   ScriptStore
	images    ImageStore
	videos    VideoStore

	text     provider.TextProvider
	image    provider.ImageProvider
	composer provider.VideoComposer
}

// NewGenerationService tạo GenerationService với đầy đủ dependency.
func NewGenerationService(
	campaigns CampaignLoader,
	credits CreditLedger,
	captions CaptionStore,
	scripts ScriptStore,
	images ImageStore,
	videos VideoStore,
	text provider.TextProvider,
	image provider.ImageProvider,
	composer provider.VideoComposer,
) *GenerationService {
	return &GenerationService{
		campaigns: campaigns,
		credits:   credits,
		captions:  captions,
		scripts:   scripts,
		images:    images,
		videos:    videos,
		text:      text,
		image:     image,
		composer:  composer,
	}
}

// loadWithBalance load chiến dịch và kiểm tra số dư đủ cho cost.
// Không mutation khi thiếu credit — kiểm tra trước mọi provider call.
func (s *GenerationService) loadWithBalance(ctx context.Context, campaignID primitive.ObjectID, cost int64) (campaignmodels.Campaign, error) {
	campaign, err := s.campaigns.FindOneById(ctx, campaignID)
	if err != nil {
		return campaignmodels.Campaign{}, err
	}
	if campaign.Credits < cost {
		return campaignmodels.Campaign{}, common.ErrInsufficientCredits
	}
	return campaign, nil
}

// GenerateCaption sinh caption cho chiến dịch. Chi phí 5 credit,
// chỉ trừ sau khi provider trả về nội dung hợp lệ.
func (s *GenerationService) GenerateCaption(ctx context.Context, campaignID primitive.ObjectID) (contentmodels.Caption, error) {
	campaign, err := s.loadWithBalance(ctx, campaignID, creditsvc.CostCaption)
	if err != nil {
		return contentmodels.Caption{}, err
	}

	prompt := BuildCaptionPrompt(campaign)
	text, err := s.text.Complete(ctx, []provider.Message{
		{Role: provider.RoleUser, Content: prompt},
	})
	if err != nil {
		return contentmodels.Caption{}, err
	}

	artifactID := primitive.NewObjectID()
	if _, err := s.credits.Charge(ctx, campaignID, creditsvc.CostCaption, creditmodels.CreditOpCaption, artifactID); err != nil {
		return contentmodels.Caption{}, err
	}

	caption := contentmodels.Caption{
		ID:          artifactID,
		CampaignID:  campaignID,
		Text:        text,
		Prompt:      prompt,
		Source:      s.text.ModelName(),
		CreditsUsed: creditsvc.CostCaption,
	}
	inserted, err := s.captions.InsertOne(ctx, caption)
	if err != nil {
		s.compensate(ctx, campaignID, creditsvc.CostCaption, creditmodels.CreditOpCaption, err)
		return contentmodels.Caption{}, err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID.Hex(),
		"artifact_id": inserted.ID.Hex(),
		"credits":     creditsvc.CostCaption,
	}).Info("✅ Đã sinh caption cho chiến dịch")
	return inserted, nil
}

// GenerateScript sinh kịch bản video cho chiến dịch. Chi phí 10 credit.
func (s *GenerationService) GenerateScript(ctx context.Context, campaignID primitive.ObjectID, userPrompt string) (contentmodels.Script, error) {
	campaign, err := s.loadWithBalance(ctx, campaignID, creditsvc.CostScript)
	if err != nil {
		return contentmodels.Script{}, err
	}

	prompt := BuildScriptPrompt(campaign, userPrompt)
	text, err := s.text.Complete(ctx, []provider.Message{
		{Role: provider.RoleUser, Content: prompt},
	})
	if err != nil {
		return contentmodels.Script{}, err
	}

	artifactID := primitive.NewObjectID()
	if _, err := s.credits.Charge(ctx, campaignID, creditsvc.CostScript, creditmodels.CreditOpScript, artifactID); err != nil {
		return contentmodels.Script{}, err
	}

	script := contentmodels.Script{
		ID:          artifactID,
		CampaignID:  campaignID,
		Text:        text,
		Prompt:      prompt,
		CreditsUsed: creditsvc.CostScript,
	}
	inserted, err := s.scripts.InsertOne(ctx, script)
	if err != nil {
		s.compensate(ctx, campaignID, creditsvc.CostScript, creditmodels.CreditOpScript, err)
		return contentmodels.Script{}, err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID.Hex(),
		"artifact_id": inserted.ID.Hex(),
		"credits":     creditsvc.CostScript,
	}).Info("✅ Đã sinh script cho chiến dịch")
	return inserted, nil
}

// GenerateImage sinh ảnh cho chiến dịch. Chi phí 5 credit. Prompt được
// enhance theo style/platform, ảnh lưu dưới dạng data URI base64.
func (s *GenerationService) GenerateImage(ctx context.Context, campaignID primitive.ObjectID, userPrompt, style, platform, resolution string) (contentmodels.Image, error) {
	if _, err := s.loadWithBalance(ctx, campaignID, creditsvc.CostImage); err != nil {
		return contentmodels.Image{}, err
	}

	enhancedPrompt := BuildImagePrompt(userPrompt, style, platform)
	width, height := DimensionsFor(resolution)

	imageData, err := s.image.Fetch(ctx, enhancedPrompt, width, height)
	if err != nil {
		return contentmodels.Image{}, err
	}

	artifactID := primitive.NewObjectID()
	if _, err := s.credits.Charge(ctx, campaignID, creditsvc.CostImage, creditmodels.CreditOpImage, artifactID); err != nil {
		return contentmodels.Image{}, err
	}

	image := contentmodels.Image{
		ID:          artifactID,
		CampaignID:  campaignID,
		Prompt:      enhancedPrompt,
		Style:       style,
		Platform:    platform,
		Resolution:  resolution,
		ImageURL:    fmt.Sprintf("data:image/jpeg;base64,%s", base64.StdEncoding.EncodeToString(imageData)),
		CreditsUsed: creditsvc.CostImage,
	}
	inserted, err := s.images.InsertOne(ctx, image)
	if err != nil {
		s.compensate(ctx, campaignID, creditsvc.CostImage, creditmodels.CreditOpImage, err)
		return contentmodels.Image{}, err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID.Hex(),
		"artifact_id": inserted.ID.Hex(),
		"credits":     creditsvc.CostImage,
	}).Info("✅ Đã sinh image cho chiến dịch")
	return inserted, nil
}

// GenerateVideo sinh video cho chiến dịch: tải ảnh theo prompt đã lắp,
// render pan/zoom bằng ffmpeg rồi nhúng MP4 base64. Chi phí 10 credit.
func (s *GenerationService) GenerateVideo(ctx context.Context, campaignID primitive.ObjectID, userPrompt, style, platform string) (contentmodels.Video, error) {
	campaign, err := s.loadWithBalance(ctx, campaignID, creditsvc.CostVideo)
	if err != nil {
		return contentmodels.Video{}, err
	}

	enhancedPrompt := BuildVideoPrompt(campaign, userPrompt, style, platform)

	imageData, err := s.image.Fetch(ctx, enhancedPrompt, 720, 720)
	if err != nil {
		return contentmodels.Video{}, err
	}

	videoData, err := s.composer.Compose(ctx, imageData)
	if err != nil {
		return contentmodels.Video{}, err
	}

	artifactID := primitive.NewObjectID()
	if _, err := s.credits.Charge(ctx, campaignID, creditsvc.CostVideo, creditmodels.CreditOpVideo, artifactID); err != nil {
		return contentmodels.Video{}, err
	}

	video := contentmodels.Video{
		ID:          artifactID,
		CampaignID:  campaignID,
		Prompt:      enhancedPrompt,
		Style:       style,
		Platform:    platform,
		VideoURL:    fmt.Sprintf("data:video/mp4;base64,%s", base64.StdEncoding.EncodeToString(videoData)),
		CreditsUsed: creditsvc.CostVideo,
	}
	inserted, err := s.videos.InsertOne(ctx, video)
	if err != nil {
		s.compensate(ctx, campaignID, creditsvc.CostVideo, creditmodels.CreditOpVideo, err)
		return contentmodels.Video{}, err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID.Hex(),
		"artifact_id": inserted.ID.Hex(),
		"credits":     creditsvc.CostVideo,
	}).Info("✅ Đã sinh video cho chiến dịch")
	return inserted, nil
}

// compensate hoàn credit khi ghi artifact thất bại sau một charge thành công.
func (s *GenerationService) compensate(ctx context.Context, campaignID primitive.ObjectID, amount int64, operation string, cause error) {
	if _, refundErr := s.credits.Refund(ctx, campaignID, amount, operation); refundErr != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id":  campaignID.Hex(),
			"operation":    operation,
			"amount":       amount,
			"insert_error": cause,
			"refund_error": refundErr,
		}).Error("Hoàn credit thất bại sau khi ghi artifact lỗi — cần đối soát ledger")
	}
}
