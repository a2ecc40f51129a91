package contentsvc

import (
	"fmt"

	basesvc "adcraft/internal/api/base/service"
	contentmodels "adcraft/internal/api/content/models"
	"adcraft/internal/common"
	"adcraft/internal/global"
)

// CaptionService là service quản lý captions đã sinh
type CaptionService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.Caption]
}

// NewCaptionService tạo mới CaptionService
func NewCaptionService() (*CaptionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Captions)
	if !exist {
		return nil, fmt.Errorf("failed to get captions collection: %v", common.ErrNotFound)
	}
	return &CaptionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.Caption](collection),
	}, nil
}

// ScriptService là service quản lý scripts đã sinh
type ScriptService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.Script]
}

// NewScriptService tạo mới ScriptService
func NewScriptService() (*ScriptService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Scripts)
	if !exist {
		return nil, fmt.Errorf("failed to get scripts collection: %v", common.ErrNotFound)
	}
	return &ScriptService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.Script](collection),
	}, nil
}

// ImageService là service quản lý ảnh đã sinh
type ImageService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.Image]
}

// NewImageService tạo mới ImageService
func NewImageService() (*ImageService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Images)
	if !exist {
		return nil, fmt.Errorf("failed to get images collection: %v", common.ErrNotFound)
	}
	return &ImageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.Image](collection),
	}, nil
}

// VideoService là service quản lý video đã sinh
type VideoService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.Video]
}

// NewVideoService tạo mới VideoService
func NewVideoService() (*VideoService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	return &VideoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.Video](collection),
	}, nil
}
