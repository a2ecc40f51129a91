// Package librarysvc tổng hợp thư viện nội dung đã sinh của các chiến dịch.
package librarysvc

import (
	"context"
	"fmt"
	"sync"

	campaignsvc "adcraft/internal/api/campaign/service"
	contentsvc "adcraft/internal/api/content/service"
	"adcraft/internal/api/events"
	librarydto "adcraft/internal/api/library/dto"
	"adcraft/internal/common"
	"adcraft/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Các giá trị type hợp lệ khi xóa artifact qua /library/:id
const (
	ArtifactTypeCaption = "caption"
	ArtifactTypeImage   = "image"
	ArtifactTypeVideo   = "video"
	ArtifactTypeScript  = "script"
)

// LibraryService tổng hợp artifact từ bốn collection và cache map
// campaignId -> tên chiến dịch. Cache invalidate qua event bus mỗi khi
// collection campaigns thay đổi.
type LibraryService struct {
	campaignService *campaignsvc.CampaignService
	captionService  *contentsvc.CaptionService
	imageService    *contentsvc.ImageService
	videoService    *contentsvc.VideoService
	scriptService   *contentsvc.ScriptService

	mu            sync.RWMutex
	campaignNames map[string]string // nil = cache chưa có / đã invalidate
}

// NewLibraryService tạo mới LibraryService và đăng ký invalidate cache
// lên event bus.
func NewLibraryService() (*LibraryService, error) {
	campaignService, err := campaignsvc.NewCampaignService()
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign service: %v", err)
	}
	captionService, err := contentsvc.NewCaptionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create caption service: %v", err)
	}
	imageService, err := contentsvc.NewImageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create image service: %v", err)
	}
	videoService, err := contentsvc.NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}
	scriptService, err := contentsvc.NewScriptService()
	if err != nil {
		return nil, fmt.Errorf("failed to create script service: %v", err)
	}

	s := &LibraryService{
		campaignService: campaignService,
		captionService:  captionService,
		imageService:    imageService,
		videoService:    videoService,
		scriptService:   scriptService,
	}

	events.OnDataChanged(func(ctx context.Context, event events.DataChangeEvent) {
		if event.CollectionName != global.MongoDB_ColNames.Campaigns {
			return
		}
		s.mu.Lock()
		s.campaignNames = nil
		s.mu.Unlock()
	})

	return s, nil
}

// newestFirst là option sort createdAt giảm dần dùng chung cho mọi list.
func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

// campaignMap trả về map campaignId -> tên chiến dịch, dùng cache nếu còn.
func (s *LibraryService) campaignMap(ctx context.Context) (map[string]string, error) {
	s.mu.RLock()
	cached := s.campaignNames
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	campaigns, err := s.campaignService.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(campaigns))
	for _, c := range campaigns {
		names[c.ID.Hex()] = c.Name
	}

	s.mu.Lock()
	s.campaignNames = names
	s.mu.Unlock()
	return names, nil
}

// GetLibrary tổng hợp toàn bộ artifact của mọi chiến dịch, mới nhất trước.
func (s *LibraryService) GetLibrary(ctx context.Context) (*librarydto.LibraryResult, error) {
	captions, err := s.captionService.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, err
	}
	images, err := s.imageService.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, err
	}
	videos, err := s.videoService.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, err
	}
	scripts, err := s.scriptService.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, err
	}
	campaignMap, err := s.campaignMap(ctx)
	if err != nil {
		return nil, err
	}

	return &librarydto.LibraryResult{
		Captions:    captions,
		Images:      images,
		Videos:      videos,
		Scripts:     scripts,
		CampaignMap: campaignMap,
	}, nil
}

// GetCampaignLibrary tổng hợp artifact của một chiến dịch.
// Trả về ErrNotFound nếu chiến dịch không tồn tại.
func (s *LibraryService) GetCampaignLibrary(ctx context.Context, campaignID primitive.ObjectID) (*librarydto.CampaignLibraryResult, error) {
	if _, err := s.campaignService.FindOneById(ctx, campaignID); err != nil {
		return nil, err
	}

	filter := bson.M{"campaignId": campaignID}
	captions, err := s.captionService.Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, err
	}
	images, err := s.imageService.Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, err
	}
	videos, err := s.videoService.Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, err
	}
	scripts, err := s.scriptService.Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, err
	}

	return &librarydto.CampaignLibraryResult{
		Captions: captions,
		Images:   images,
		Videos:   videos,
		Scripts:  scripts,
	}, nil
}

// DeleteArtifact xóa một artifact theo ID và loại.
func (s *LibraryService) DeleteArtifact(ctx context.Context, artifactID primitive.ObjectID, artifactType string) error {
	var err error
	switch artifactType {
	case ArtifactTypeCaption:
		err = s.captionService.DeleteById(ctx, artifactID)
	case ArtifactTypeImage:
		err = s.imageService.DeleteById(ctx, artifactID)
	case ArtifactTypeVideo:
		err = s.videoService.DeleteById(ctx, artifactID)
	case ArtifactTypeScript:
		err = s.scriptService.DeleteById(ctx, artifactID)
	default:
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Loại artifact '%s' không hợp lệ (caption, image, video, script)", artifactType),
			common.StatusBadRequest,
			nil,
		)
	}
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"artifact_id":   artifactID.Hex(),
		"artifact_type": artifactType,
	}).Info("Đã xóa artifact khỏi thư viện")
	return nil
}
